// Package fragment implements the MT extended fragmentation protocol.
//
// Messages larger than one frame's data budget travel as a sequence of
// fragment data frames. Block 0 carries the total length; every block is
// acknowledged before the next one is sent (stop-and-wait).
//
// # Sending
//
// A Splitter holds at most one outbound session:
//
//	Idle -> AwaitAck -> (next block) -> AwaitAck -> Done
//	                 \-> Aborted (resend limit, bad ack, peer abort)
//
// A RESEND acknowledgement retransmits the current block unchanged. Only a
// bounded number of consecutive resends is tolerated; an ack timeout counts
// as a resend request.
//
// # Receiving
//
// An Assembler holds at most one inbound session:
//
//	Idle -> Receiving -> Complete
//	                  \-> Aborted (BADBLOCK, BADLENGTH, NOMEMORY, timeout, peer abort)
//
// The completed message is returned as an mt.Frame addressed like the
// fragments, ready for dispatch as if it had arrived in one frame.
//
// Neither type is safe for concurrent use. Both are driven by the bridge's
// single worker, which also calls Expire periodically.
package fragment
