// Package persistence provides file-backed storage for the NV bridge.
//
// The file is a log of CBOR records, one per mutation, replayed on open.
// Compaction rewrites the log with one record per live item.
package persistence
