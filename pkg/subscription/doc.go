// Package subscription filters asynchronous engine events through the
// per-subsystem callback subscription masks before they reach the host.
//
// # Masks
//
// Each subsystem that raises callbacks owns one 32-bit mask, one bit per
// indication kind. All bits are set at reset. A subscription command whose
// mask has the top bit set clears the remaining bits of the mask; any other
// command sets them. The resulting mask is returned so it can be echoed to
// the host.
//
// # Routing
//
// Engine callbacks may arrive on any goroutine. Router.Post hands them to
// the bridge worker over a buffered channel; when the channel is full the
// event is dropped and counted. The worker drains Router.Events and calls
// Router.Dispatch, which encodes the event and sends it only if its bit is
// set. Suppressed events are neither queued nor retried.
package subscription
