// Package store archives benchmark reports in a SQLite database.
//
// It uses the pure-Go modernc.org/sqlite driver, so no cgo toolchain is
// required. Every solve run gets its own run id; a run's rows are written in
// a single transaction per category, so a failed write leaves no partial
// category behind. The archive is optional and only opened when a database
// path is configured.
package store
