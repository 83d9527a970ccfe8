package model

import (
	"github.com/andaru/arxml/arerr"
	"github.com/pkg/errors"
)

// BucketName names one of the document's top-level record groupings.
type BucketName string

const (
	Signals      BucketName = "signals"
	PDUs         BucketName = "pdus"
	CompuMethods BucketName = "compumethods"
	Frames       BucketName = "frames"
	Networks     BucketName = "networks"
)

// BucketNames returns every bucket a Document holds
func BucketNames() []BucketName {
	return []BucketName{Signals, PDUs, CompuMethods, Frames, Networks}
}

// Document is the document-level record produced by a parse run.
type Document struct {
	// Namespace is the namespace URI all element matching was qualified by.
	Namespace string
	// Release is the AUTOSAR schema release detected for the document,
	// or empty if it could not be determined.
	Release string

	buckets map[BucketName]*Bucket
}

// NewDocument returns a Document with every bucket present and empty.
func NewDocument() *Document {
	d := &Document{buckets: make(map[BucketName]*Bucket, len(BucketNames()))}
	for _, name := range BucketNames() {
		d.buckets[name] = NewBucket()
	}
	return d
}

// Bucket returns the named bucket, or nil if the document has no such
// bucket.
func (d *Document) Bucket(name BucketName) *Bucket { return d.buckets[name] }

func (d *Document) Signals() *Bucket      { return d.Bucket(Signals) }
func (d *Document) PDUs() *Bucket         { return d.Bucket(PDUs) }
func (d *Document) CompuMethods() *Bucket { return d.Bucket(CompuMethods) }
func (d *Document) Frames() *Bucket       { return d.Bucket(Frames) }
func (d *Document) Networks() *Bucket     { return d.Bucket(Networks) }

// Append files r into the named bucket under r's own name.
func (d *Document) Append(name BucketName, r *Record) (merged bool, err error) {
	b := d.Bucket(name)
	if b == nil {
		return false, errors.WithStack(arerr.UnknownBucket(string(name)))
	}
	return b.Append(r.Name(), r), nil
}

// Len returns the total number of records across all buckets.
func (d *Document) Len() (n int) {
	for _, b := range d.buckets {
		n += b.Len()
	}
	return n
}

// Equal reports whether d and other are field-for-field equal.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Namespace != other.Namespace || d.Release != other.Release {
		return false
	}
	if len(d.buckets) != len(other.buckets) {
		return false
	}
	for name, b := range d.buckets {
		if !b.Equal(other.Bucket(name)) {
			return false
		}
	}
	return true
}
