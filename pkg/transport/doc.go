// Package transport carries MT frames over byte streams.
//
// MT frames are self-delimiting: the first byte is the data length and the
// extended flag in the second byte says whether a fourth header byte
// follows. The framer reads exactly one encoded frame per call, so the
// layers above always see whole frames.
//
// # Protocol Stack
//
//	┌────────────────────────────────┐
//	│   MT RPC (SYS / MAC / UTIL)    │
//	├────────────────────────────────┤
//	│  MT frames  [len][cmd0][cmd1]  │
//	├────────────────────────────────┤
//	│     TCP, or an in-memory pipe  │
//	└────────────────────────────────┘
//
// A Server accepts hosts and hands each connection to a Handler. The bridge
// serves one host at a time by default; extra connections are refused.
//
// # Liveness
//
// KeepAlive sends a probe at a fixed interval (the host client uses
// SYS PING) and reports the link dead after a number of unanswered probes:
//   - Ping interval: 10 seconds
//   - Reply timeout: 2 seconds
//   - Max missed replies: 3
package transport
