// Package ntpcodec adapts ntp.Timestamp to structured-data frameworks.
//
// Every adapter writes the timestamp as a single unsigned 64-bit integer, the
// packed form returned by Raw, and reads any uint64 back through FromRaw.
// Errors only come from malformed framework input and wrap
// ntp.ErrInvalidEncoding.
package ntpcodec
