// Package logtail reads the tail of dexterm's log file for the in-app log
// overlay.
//
// Read keeps a ring buffer of maxLines entries, so memory stays bounded by the
// number of lines shown rather than the size of the file. A missing file is
// not an error; the overlay simply shows nothing.
//
// Parse decodes the JSON lines written by the zap file sink into an Entry.
// Reserved keys (ts, level, msg, logger, caller) become fields of the entry;
// everything else is kept as a sorted key/value list. Lines that are not JSON
// are passed through unchanged.
//
//	{"level":"warn","ts":"2026-10-16T10:00:00Z","msg":"species fetch failed","id":25}
//	10:00:00 WARN species fetch failed id=25
package logtail
