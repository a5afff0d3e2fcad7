// Package pebble implements the core.Store persistence contract on top of a
// CockroachDB Pebble key-value database.
//
// Rows are keyed under per-entity namespaces with a sortable timestamp prefix
// so list operations are plain prefix scans:
//
//	t:<owner>:<unix_nano_padded>-<seq>:<threadID>   thread row
//	tix:<owner>:<threadID>                          thread sort-key index
//	i:<owner>:<threadID>:<unix_nano_padded>-<seq>:<itemID>
//	iix:<owner>:<threadID>:<itemID>
//	a:<owner>:<attachmentID>
//	w:<owner>:<widgetID>
//
// The padded nanosecond timestamp plus an in-process sequence counter yields
// keys whose byte order matches the (created_at, insertion-order) sort the
// pagination contract requires.
package pebble
