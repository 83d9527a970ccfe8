// Package model holds the communication data model extracted from an
// ECU extract.
//
// A Document groups Records into five Buckets (signals, pdus,
// compumethods, frames and networks). Records are keyed by name within
// a bucket; appending a record under a name already present merges
// the new fields into the existing record instead of replacing it, so
// partial definitions spread across a document accumulate into one
// entry.
//
// Record.Get never fails. A key the record does not hold yields the
// Missing sentinel.
package model
