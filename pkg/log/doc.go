// Package log captures MT protocol events.
//
// Protocol capture is separate from operational logging (slog): it records a
// machine-readable trace of every frame, message, fragment and state change
// on a link, for later inspection with mt-log.
//
// A bridge or host takes a Logger in its config:
//
//	file, err := log.NewFileLogger("/var/log/mt/bridge.mlog")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//	cfg.ProtocolLogger = log.NewMultiLogger(file, log.NewSlogAdapter(slog.Default()))
//
// Events are tagged with the layer that produced them: transport (raw
// bytes), frame (decoded frames and reassembled messages) or service
// (bridge lifecycle). Fragment data, ACK and status frames and errors have
// their own payload types.
//
// Capture files are concatenated CBOR events, conventionally named *.mlog.
// Reader and NewFilteredReader stream them back.
package log
