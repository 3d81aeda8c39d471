// Package macsim provides an in-memory MAC engine.
//
// The simulated engine keeps a PAN information base, the security tables
// and the frequency-hopping PIB in memory and answers asynchronous requests
// with plausible confirms. It backs cmd/mt-bridge when no radio is attached
// and drives the end-to-end tests of the bridge service.
//
// Confirms are delivered in request order. With a zero ConfirmDelay they are
// delivered on the calling goroutine after the request returns its status;
// otherwise a timer delivers them.
package macsim
