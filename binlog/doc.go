// Package binlog decodes the binary replication log event stream of a
// relational database into a typed object model and verifies the CRC32
// checksum some of those events carry.
//
// The entry point is Session: create one with NewSession (or ResumeSession
// if the caller already knows the active FormatDescription), then call
// Session.Decode once per complete event byte slice. The package never
// reads from a network connection or a file itself; feeding it bytes is the
// caller's job.
package binlog
