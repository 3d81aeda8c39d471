// Package mac defines the boundary between the MT bridge and the MAC engine
// it exposes.
//
// The engine is consumed through the Engine interface: MLME-style requests
// (start, scan, associate, data), typed access to the PAN information base,
// the security PIB including its table entries, and the frequency-hopping
// PIB. Results that the engine produces later (confirms and indications)
// are delivered as Event values through the handler registered with
// SetEventHandler.
//
// Types in this package carry engine-level values only. Wire layouts live in
// package payload.
package mac
