package model

// Key is a Record attribute key.
type Key string

const (
	KeyName        Key = "name"
	KeyLength      Key = "length"
	KeyDescription Key = "description"
)

// Missing is returned by Record.Get for keys the record does not hold.
// Callers may probe optional attributes and compare against Missing
// instead of checking for presence first.
const Missing = "missing"

// Record is a named set of attribute values extracted from one
// container element.
//
// The zero value is an empty record ready to use.
type Record struct {
	keys   []Key
	fields map[Key]string
}

// NewRecord returns an empty Record
func NewRecord() *Record { return &Record{} }

// Get returns the value stored under k, or Missing.
func (r *Record) Get(k Key) string {
	if v, ok := r.Lookup(k); ok {
		return v
	}
	return Missing
}

// Lookup returns the value stored under k and whether it was present.
func (r *Record) Lookup(k Key) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.fields[k]
	return v, ok
}

// Set stores v under k, replacing any existing value.
func (r *Record) Set(k Key, v string) {
	if r.fields == nil {
		r.fields = map[Key]string{}
	}
	if _, ok := r.fields[k]; !ok {
		r.keys = append(r.keys, k)
	}
	r.fields[k] = v
}

// Merge copies every field of other into r. Fields present in both
// take other's value; fields only in r are left untouched.
func (r *Record) Merge(other *Record) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		r.Set(k, other.fields[k])
	}
}

// Name returns the record's name attribute (or Missing).
func (r *Record) Name() string { return r.Get(KeyName) }

// Keys returns the keys present, in the order they were first set.
func (r *Record) Keys() []Key {
	if r == nil || len(r.keys) == 0 {
		return nil
	}
	return append([]Key(nil), r.keys...)
}

// Len returns the number of fields held.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Equal reports whether r and other hold the same fields and values.
// Key order is not significant.
func (r *Record) Equal(other *Record) bool {
	if r.Len() != other.Len() {
		return false
	}
	for _, k := range r.Keys() {
		if v, ok := other.Lookup(k); !ok || v != r.fields[k] {
			return false
		}
	}
	return true
}

// Map returns a copy of the record's fields.
func (r *Record) Map() map[Key]string {
	m := make(map[Key]string, r.Len())
	for _, k := range r.Keys() {
		m[k] = r.fields[k]
	}
	return m
}

func (r *Record) String() string {
	s := "{"
	for i, k := range r.Keys() {
		if i > 0 {
			s += " "
		}
		s += string(k) + ":" + r.fields[k]
	}
	return s + "}"
}
