// Package payload converts MT command bodies to engine values and engine
// results back to MT bodies.
//
// Decoders check the body length against the command's fixed or minimum
// size before any field is read and report failures as wire.Status values,
// so a handler can answer with a one-byte status and skip the engine call.
// Encoders size the body up front and fill it sequentially.
//
// The width of security table indices is a property of the Codec, fixed at
// construction and never inferred from a message.
package payload
