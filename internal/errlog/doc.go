// Package errlog keeps a bounded in-memory log of client-observed failures
// so an operator can diagnose a misbehaving backend after the fact.
//
// The buffer is a fixed-capacity ring (500 entries by default) evicting
// oldest-first. Entries are stored oldest-to-newest, displayed newest-first
// and exported oldest-first. Each append is also mirrored to the console's
// structured log file so failures survive the session.
package errlog
