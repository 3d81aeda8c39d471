package interactive

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/lowpan-mt/mt-go/pkg/nv"
)

// cmdNV handles the nv command family.
func (c *Console) cmdNV(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("nv <create|delete|length|read|write|update|compact> ...")
	}
	op := strings.ToLower(args[0])
	args = args[1:]

	if op == "compact" {
		var threshold uint64
		if len(args) > 0 {
			var err error
			if threshold, err = parseUint(args[0], 16); err != nil {
				return err
			}
		}
		if err := c.client.NVCompact(ctx, uint16(threshold)); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "NV compacted")
		return nil
	}

	if len(args) == 0 {
		return usage("nv " + op + " <sys/item/sub> ...")
	}
	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}
	args = args[1:]

	switch op {
	case "create":
		if len(args) != 1 {
			return usage("nv create <id> <length>")
		}
		length, err := parseUint(args[0], 32)
		if err != nil {
			return err
		}
		if err := c.client.NVCreate(ctx, id, uint32(length)); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Created %s (%d bytes)\n", id, length)

	case "delete":
		if err := c.client.NVDelete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Deleted %s\n", id)

	case "length", "len":
		n, err := c.client.NVLength(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%s: %d bytes\n", id, n)

	case "read":
		var offset, length uint64
		if len(args) > 0 {
			if offset, err = parseUint(args[0], 16); err != nil {
				return err
			}
		}
		if len(args) > 1 {
			if length, err = parseUint(args[1], 8); err != nil {
				return err
			}
		} else {
			n, err := c.client.NVLength(ctx, id)
			if err != nil {
				return err
			}
			length = min(uint64(n)-min(offset, uint64(n)), nv.MaxReadSize)
		}
		data, err := c.client.NVRead(ctx, id, uint16(offset), uint8(length))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%s@%d: %s\n", id, offset, hex.EncodeToString(data))

	case "write":
		if len(args) != 2 {
			return usage("nv write <id> <offset> <hex>")
		}
		offset, err := parseUint(args[0], 16)
		if err != nil {
			return err
		}
		data, err := parseHex(args[1])
		if err != nil {
			return err
		}
		if err := c.client.NVWrite(ctx, id, uint16(offset), data); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Wrote %d bytes to %s\n", len(data), id)

	case "update":
		if len(args) != 1 {
			return usage("nv update <id> <hex>")
		}
		data, err := parseHex(args[0])
		if err != nil {
			return err
		}
		if err := c.client.NVUpdate(ctx, id, data); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Updated %s (%d bytes)\n", id, len(data))

	default:
		return fmt.Errorf("unknown nv operation: %s", op)
	}
	return nil
}
