package client

import (
	"context"
	"fmt"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/interaction"
	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/nv"
	"github.com/lowpan-mt/mt-go/pkg/payload"
	"github.com/lowpan-mt/mt-go/pkg/version"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// call issues an SREQ and returns the response body. Subsystem errors
// answered on RES0 become a StatusError.
func (c *Client) call(ctx context.Context, sub mt.Subsystem, cmd uint8, body []byte) ([]byte, error) {
	req := mt.NewFrame(mt.TypeSREQ, sub, cmd, body)
	rsp, err := c.Request(ctx, req)
	if err != nil {
		return nil, err
	}
	if rsp.Subsystem == mt.SubsystemRes0 {
		return nil, statusError(req, rsp.Data)
	}
	return rsp.Data, nil
}

// callStatus issues an SREQ whose response starts with a status byte.
func (c *Client) callStatus(ctx context.Context, sub mt.Subsystem, cmd uint8, body []byte) ([]byte, error) {
	data, err := c.call(ctx, sub, cmd, body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrShortResponse
	}
	if st := wire.Status(data[0]); st != wire.StatusSuccess {
		return nil, &StatusError{Command: mt.NewFrame(mt.TypeSREQ, sub, cmd, nil).String(), Status: st}
	}
	return data[1:], nil
}

func statusError(req mt.Frame, data []byte) error {
	if len(data) == 0 {
		return ErrShortResponse
	}
	return &StatusError{Command: req.String(), Status: wire.Status(data[0])}
}

// fixed checks a response that carries a value of n bytes. A single byte is
// a status.
func fixed(req string, data []byte, n int) error {
	if len(data) == n {
		return nil
	}
	if len(data) == 1 {
		return &StatusError{Command: req, Status: wire.Status(data[0])}
	}
	return fmt.Errorf("%w: %s answered %d bytes", ErrShortResponse, req, len(data))
}

// Ping returns the bridge's capability mask.
func (c *Client) Ping(ctx context.Context) (uint16, error) {
	data, err := c.call(ctx, mt.SubsystemSys, mt.SysPing, nil)
	if err != nil {
		return 0, err
	}
	if err := fixed("PING", data, 2); err != nil {
		return 0, err
	}
	return wire.NewReader(data).Uint16(), nil
}

// Version returns the bridge's version record.
func (c *Client) Version(ctx context.Context) (version.Record, error) {
	data, err := c.call(ctx, mt.SubsystemSys, mt.SysVersion, nil)
	if err != nil {
		return version.Record{}, err
	}
	if err := fixed("VERSION", data, version.RecordSize); err != nil {
		return version.Record{}, err
	}
	return version.DecodeRecord(data)
}

// Reset asks the bridge to restart. The restart is announced by a
// SYS_RESET_IND indication.
func (c *Client) Reset(t interaction.ResetType) error {
	return c.Send(mt.NewFrame(mt.TypeAREQ, mt.SubsystemSys, mt.SysResetReq, []byte{uint8(t)}))
}

// Subscribe applies a callback subscription mask and returns the resulting
// mask.
func (c *Client) Subscribe(ctx context.Context, sub mt.Subsystem, mask uint32) (uint32, error) {
	w := wire.NewWriter(interaction.CallbackSubReqSize)
	w.PutUint8(uint8(sub))
	w.PutUint32(mask)
	data, err := c.callStatus(ctx, mt.SubsystemUtil, mt.UtilCallbackSub, w.Bytes())
	if err != nil {
		return 0, err
	}
	if len(data) != 4 {
		return 0, ErrShortResponse
	}
	return wire.NewReader(data).Uint32(), nil
}

// Loopback sends data to be echoed. With repeats > 0 the bridge also sends
// that many AREQ copies, one interval apart.
func (c *Client) Loopback(ctx context.Context, repeats uint8, interval time.Duration, data []byte) ([]byte, error) {
	w := wire.NewWriter(interaction.LoopbackHeaderSize + len(data))
	w.PutUint8(repeats)
	w.PutUint32(uint32(interval / time.Millisecond))
	w.PutBytes(data)

	echo, err := c.call(ctx, mt.SubsystemUtil, mt.UtilLoopback, w.Bytes())
	if err != nil {
		return nil, err
	}
	if len(echo) < interaction.LoopbackHeaderSize {
		return nil, fixed("LOOPBACK", echo, interaction.LoopbackHeaderSize)
	}
	return echo[interaction.LoopbackHeaderSize:], nil
}

// Random returns a random value from the radio.
func (c *Client) Random(ctx context.Context) (uint16, error) {
	data, err := c.call(ctx, mt.SubsystemUtil, mt.UtilRandom, nil)
	if err != nil {
		return 0, err
	}
	if err := fixed("RANDOM", data, 2); err != nil {
		return 0, err
	}
	return wire.NewReader(data).Uint16(), nil
}

// ExtAddress returns one of the bridge's extended addresses.
func (c *Client) ExtAddress(ctx context.Context, kind mac.ExtAddrType) (wire.ExtAddr, error) {
	data, err := c.call(ctx, mt.SubsystemUtil, mt.UtilExtAddr, []byte{uint8(kind)})
	if err != nil {
		return wire.ExtAddr{}, err
	}
	if err := fixed("EXT_ADDR", data, 1+wire.ExtAddrSize); err != nil {
		return wire.ExtAddr{}, err
	}
	r := wire.NewReader(data[1:])
	return r.ExtAddr(), nil
}

// GetPIB reads a MAC PIB attribute as raw little-endian bytes.
func (c *Client) GetPIB(ctx context.Context, attr mac.PIBAttribute) ([]byte, error) {
	data, err := c.callStatus(ctx, mt.SubsystemMAC, mt.MACGetReq, payload.EncodeGetPIB(attr))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || len(data)-1 != int(data[0]) {
		return nil, ErrShortResponse
	}
	return data[1:], nil
}

// SetPIB writes a MAC PIB attribute. value must have the attribute's width.
func (c *Client) SetPIB(ctx context.Context, attr mac.PIBAttribute, value []byte) error {
	_, err := c.callStatus(ctx, mt.SubsystemMAC, mt.MACSetReq, payload.EncodeSetPIB(attr, value))
	return err
}

// MACReset resets the MAC engine, optionally restoring the default PIB.
func (c *Client) MACReset(ctx context.Context, setDefaultPIB bool) error {
	var flag uint8
	if setDefaultPIB {
		flag = 1
	}
	_, err := c.callStatus(ctx, mt.SubsystemMAC, mt.MACResetReq, []byte{flag})
	return err
}

func itemBody(id nv.ItemID, extra int) *wire.Writer {
	w := wire.NewWriter(nv.ItemIDSize + extra)
	nv.PutItemID(w, id)
	return w
}

// NVCreate creates an NV item.
func (c *Client) NVCreate(ctx context.Context, id nv.ItemID, length uint32) error {
	w := itemBody(id, 4)
	w.PutUint32(length)
	_, err := c.callStatus(ctx, mt.SubsystemSys, mt.SysNVCreate, w.Bytes())
	return err
}

// NVDelete deletes an NV item.
func (c *Client) NVDelete(ctx context.Context, id nv.ItemID) error {
	_, err := c.callStatus(ctx, mt.SubsystemSys, mt.SysNVDelete, itemBody(id, 0).Bytes())
	return err
}

// NVLength returns the length of an NV item.
func (c *Client) NVLength(ctx context.Context, id nv.ItemID) (uint32, error) {
	data, err := c.callStatus(ctx, mt.SubsystemSys, mt.SysNVLength, itemBody(id, 0).Bytes())
	if err != nil {
		return 0, err
	}
	if len(data) != 4 {
		return 0, ErrShortResponse
	}
	return wire.NewReader(data).Uint32(), nil
}

// NVRead reads up to length bytes of an NV item starting at offset.
func (c *Client) NVRead(ctx context.Context, id nv.ItemID, offset uint16, length uint8) ([]byte, error) {
	w := itemBody(id, 3)
	w.PutUint16(offset)
	w.PutUint8(length)
	data, err := c.callStatus(ctx, mt.SubsystemSys, mt.SysNVRead, w.Bytes())
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || len(data)-1 != int(data[0]) {
		return nil, ErrShortResponse
	}
	return data[1:], nil
}

// maxNVValue is the largest value one NV_WRITE or NV_UPDATE carries.
const maxNVValue = 0xFF

// NVWrite writes data into an NV item at offset.
func (c *Client) NVWrite(ctx context.Context, id nv.ItemID, offset uint16, data []byte) error {
	if len(data) > maxNVValue {
		return fmt.Errorf("%w: %d bytes", ErrValueTooLarge, len(data))
	}
	w := itemBody(id, 3+len(data))
	w.PutUint16(offset)
	w.PutUint8(uint8(len(data)))
	w.PutBytes(data)
	_, err := c.callStatus(ctx, mt.SubsystemSys, mt.SysNVWrite, w.Bytes())
	return err
}

// NVUpdate replaces an NV item's content, creating it if needed.
func (c *Client) NVUpdate(ctx context.Context, id nv.ItemID, data []byte) error {
	if len(data) > maxNVValue {
		return fmt.Errorf("%w: %d bytes", ErrValueTooLarge, len(data))
	}
	w := itemBody(id, 1+len(data))
	w.PutUint8(uint8(len(data)))
	w.PutBytes(data)
	_, err := c.callStatus(ctx, mt.SubsystemSys, mt.SysNVUpdate, w.Bytes())
	return err
}

// NVCompact asks the bridge to compact its NV store.
func (c *Client) NVCompact(ctx context.Context, threshold uint16) error {
	w := wire.NewWriter(2)
	w.PutUint16(threshold)
	_, err := c.callStatus(ctx, mt.SubsystemSys, mt.SysNVCompact, w.Bytes())
	return err
}
