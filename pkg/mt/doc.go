// Package mt implements the MT frame codec.
//
// A basic frame is a three-byte header followed by at most 250 data bytes:
//
//	[length][type|subsystem][command][data...]
//
// The second header byte packs the frame type in bits 5-6, the extended
// flag in bit 7 and the subsystem in bits 0-4. When the extended flag is set
// a fourth header byte carries a 5-bit extended version and a 3-bit stack
// id, and the data starts at offset 4.
//
// Extended versions select the frame kind: a stack-addressed command, a
// fragment of an oversized message, a fragment acknowledgement, or a
// fragment status report. The fragment bodies are parsed by the helpers in
// extended.go; session state lives in package fragment.
//
// Decode and Encode are pure transforms. Callers decide whether a decode
// error is answered with a status frame or dropped.
package mt
