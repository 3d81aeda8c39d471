// Package service runs an MT bridge: it connects a host link to a MAC
// engine.
//
// # Bridge
//
// Bridge owns every piece of protocol state: the command registry and
// dispatcher, the callback subscription table and router, the fragment
// splitter and assembler, the NV bridge and the loopback scheduler. It
// serves one host link at a time:
//
//	engine := macsim.New(macsim.DefaultConfig())
//	bridge, err := service.NewBridge(engine, service.DefaultBridgeConfig())
//	if err != nil {
//		return err
//	}
//	err = bridge.Serve(ctx, conn)
//
// # Worker model
//
// Serve starts one reader goroutine that feeds decoded input to a single
// worker loop. The worker handles, in arrival order:
//   - inbound frames and reassembled messages
//   - engine confirms and indications posted through the router
//   - fragment acknowledgement and reassembly timeouts
//   - loopback repeats
//
// Every handler call and every transmission happens on the worker, so
// protocol state needs no locking. Engine events enter through a bounded
// channel; when it is full the event is dropped and counted.
//
// # Reset
//
// A SYS_RESET_REQ records the reset reason in NV, resets the engine, the
// subscription table and any fragment session, calls the embedder's
// ResetFunc and then announces the new start with SYS_RESET_IND.
package service
