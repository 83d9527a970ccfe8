package dispatch

import (
	"encoding/xml"
	"fmt"

	"github.com/andaru/arxml/model"
	"github.com/andaru/arxml/xmlutil"
)

// Kind is the kind of a dispatch table entry.
type Kind int

const (
	// KindAttribute entries copy an element's text into a record field.
	KindAttribute Kind = iota + 1
	// KindContainer entries start a new record for the element.
	KindContainer
)

func (k Kind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindContainer:
		return "container"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is a dispatch table entry. Key is set for KindAttribute entries,
// Category for KindContainer entries.
type Entry struct {
	Kind     Kind
	Key      model.Key
	Category Category
}

// attributeTags maps element local names to the record field they fill.
var attributeTags = map[string]model.Key{
	"SHORT-NAME":   model.KeyName,
	"LENGTH":       model.KeyLength,
	"FRAME-LENGTH": model.KeyLength,
	"L-2":          model.KeyDescription,
}

// Table maps namespace qualified element names to entries. A Table is
// immutable once built.
type Table struct {
	namespace string
	entries   map[xml.Name]Entry
}

// New returns the dispatch table for documents in the namespace nsURI.
func New(nsURI string) *Table {
	t := &Table{
		namespace: nsURI,
		entries:   make(map[xml.Name]Entry, len(attributeTags)+len(categories)),
	}
	for tag, key := range attributeTags {
		t.entries[xmlutil.XMLName(tag, nsURI)] = Entry{Kind: KindAttribute, Key: key}
	}
	for _, c := range categories {
		t.entries[xmlutil.XMLName(c.tag, nsURI)] = Entry{Kind: KindContainer, Category: c.c}
	}
	return t
}

// Namespace returns the namespace URI the table's names are qualified by
func (t *Table) Namespace() string { return t.namespace }

// Lookup returns the entry for the qualified element name.
func (t *Table) Lookup(name xml.Name) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Attribute returns the record key for name if it is an attribute entry.
func (t *Table) Attribute(name xml.Name) (model.Key, bool) {
	if e, ok := t.Lookup(name); ok && e.Kind == KindAttribute {
		return e.Key, true
	}
	return "", false
}

// Container returns the category for name if it is a container entry.
func (t *Table) Container(name xml.Name) (Category, bool) {
	if e, ok := t.Lookup(name); ok && e.Kind == KindContainer {
		return e.Category, true
	}
	return 0, false
}

// Len returns the number of entries in the table
func (t *Table) Len() int { return len(t.entries) }
