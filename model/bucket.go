package model

// Bucket maps record names to records, preserving the order in which
// names were first appended.
//
// The zero value is an empty bucket ready to use.
type Bucket struct {
	names   []string
	records map[string]*Record
}

// NewBucket returns an empty Bucket
func NewBucket() *Bucket { return &Bucket{} }

// Append files r under name. If name is already present, r's fields are
// merged into the existing record and merged is true; the existing
// record keeps its identity.
func (b *Bucket) Append(name string, r *Record) (merged bool) {
	if b.records == nil {
		b.records = map[string]*Record{}
	}
	if existing, ok := b.records[name]; ok {
		existing.Merge(r)
		return true
	}
	b.names = append(b.names, name)
	b.records[name] = r
	return false
}

// Get returns the record filed under name.
func (b *Bucket) Get(name string) (*Record, bool) {
	if b == nil {
		return nil, false
	}
	r, ok := b.records[name]
	return r, ok
}

// Record returns the record filed under name, or nil.
func (b *Bucket) Record(name string) *Record {
	r, _ := b.Get(name)
	return r
}

// Names returns the record names in first-appended order.
func (b *Bucket) Names() []string {
	if b == nil || len(b.names) == 0 {
		return nil
	}
	return append([]string(nil), b.names...)
}

// Len returns the number of records in the bucket.
func (b *Bucket) Len() int {
	if b == nil {
		return 0
	}
	return len(b.names)
}

// Equal reports whether b and other hold equal records under the same
// names. Name order is not significant.
func (b *Bucket) Equal(other *Bucket) bool {
	if b.Len() != other.Len() {
		return false
	}
	for _, name := range b.Names() {
		o, ok := other.Get(name)
		if !ok || !b.records[name].Equal(o) {
			return false
		}
	}
	return true
}
