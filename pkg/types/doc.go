// Package types defines the core types and interfaces used throughout
// duplink. This includes the FS filesystem interface, the File handle
// produced by scanning, the duplicate Group, and the run Stats shared
// by the scan and link commands.
package types
