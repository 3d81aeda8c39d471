// Package nv bridges the MT SYS non-volatile memory commands to a storage
// driver.
//
// Storage is the minimal driver: items can be read and written. Drivers
// may also implement Creator, Deleter, Lengther, Updater and Compactor; a
// command whose capability is missing answers StatusUnsupported without
// touching the driver.
//
// Driver errors are collapsed into the RPC status set by StatusOf.
package nv
