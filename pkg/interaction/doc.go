// Package interaction routes MT commands to their handlers.
//
// A Registry maps (subsystem, command id) to a Command. It is filled once at
// startup by the subsystem handler groups and read-only afterwards:
//
//	reg := interaction.NewRegistry()
//	sys := interaction.NewSystem(interaction.SystemConfig{Registry: reg, NV: nvBridge})
//	mac := interaction.NewMAC(engine, codec)
//	util := interaction.NewUtil(table, engine, scheduler)
//	for _, g := range []interaction.Group{sys, mac, util} {
//	    if err := g.Register(reg); err != nil { ... }
//	}
//
// The Dispatcher looks up each inbound frame and applies the error rules of
// the RPC layer:
//
//   - Unknown subsystem: SRSP on RES0 with status subSysError.
//   - Unknown command id or wrong frame type: SRSP with commandIDError.
//   - Malformed body: the handler answers a one-byte lengthError before any
//     field is read or any engine call is made.
//
// AREQ input is handled but never answered; errors on AREQ, POLL, and SRSP
// input are logged and dropped. Every SREQ gets exactly one SRSP.
package interaction
