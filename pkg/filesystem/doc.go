// Package filesystem provides filesystem implementations for duplink.
//
// This package contains implementations of the types.FS interface,
// currently the standard OS filesystem used by every command.
package filesystem
