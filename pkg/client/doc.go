// Package client implements the host side of an MT link.
//
// A Client issues one SREQ at a time and waits for the matching SRSP.
// Requests and responses larger than one frame travel as fragments; the
// client acknowledges inbound blocks and waits for acknowledgements of its
// own. AREQs from the bridge (callbacks, reset indications, loopback
// repeats) are handed to the indication handler on the reader goroutine.
//
// Basic usage:
//
//	conn, err := transport.Dial(ctx, "localhost:2560", transport.DialConfig{})
//	if err != nil {
//	    return err
//	}
//	c := client.New(conn, client.DefaultConfig())
//	c.OnIndication(func(f mt.Frame) { fmt.Println(f) })
//	c.Start(ctx)
//	defer c.Close()
//
//	caps, err := c.Ping(ctx)
package client
