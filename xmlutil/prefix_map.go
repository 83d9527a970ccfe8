package xmlutil

import (
	"encoding/xml"
	"sort"

	"github.com/antchfx/xmlquery"
)

// PrefixMap is a prefix to namespace URI map. The default namespace is
// held under the empty prefix.
type PrefixMap map[string]string

// NewPrefixMap returns a PrefixMap, containing the namespace declarations
// found in the passed XML attributes
func NewPrefixMap(attrs ...xml.Attr) PrefixMap {
	pmap := PrefixMap{}
	for _, attr := range attrs {
		switch {
		case attr.Name.Space == "xmlns":
			pmap[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			pmap[""] = attr.Value
		}
	}
	return pmap
}

// NodePrefixMap returns the namespace declarations made on the element n.
// Declarations made on ancestors are not included.
func NodePrefixMap(n *xmlquery.Node) PrefixMap {
	attrs := make([]xml.Attr, 0, len(n.Attr))
	for _, a := range n.Attr {
		attrs = append(attrs, xml.Attr{Name: a.Name, Value: a.Value})
	}
	return NewPrefixMap(attrs...)
}

// Attr returns the prefix map contents as a series of xmlns:<prefix>=<nsuri> attributes,
// sorted lexically by prefix. The default namespace, if any, is returned
// first as a plain xmlns attribute.
func (m PrefixMap) Attr() (a []xml.Attr) {
	for k, v := range m {
		if k == "" {
			continue
		}
		a = append(a, xml.Attr{Name: xml.Name{Space: "xmlns", Local: k}, Value: v})
	}
	if len(a) > 0 {
		// sort lexically by prefix
		sort.Slice(a, func(i int, j int) bool { return a[i].Name.Local < a[j].Name.Local })
	}
	if def, ok := m[""]; ok {
		a = append([]xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: def}}, a...)
	}
	return a
}

// Namespace returns the namespace URI for the given prefix
func (m PrefixMap) Namespace(prefix string) string { return m[prefix] }

// Default returns the default (unprefixed) namespace URI and whether one
// was declared.
func (m PrefixMap) Default() (string, bool) {
	ns, ok := m[""]
	return ns, ok
}

// Prefix returns any prefixes found for the namespace URI, sorted lexically
func (m PrefixMap) Prefix(nsURI string) (pfxes []string) {
	for k, v := range m {
		if nsURI == v {
			pfxes = append(pfxes, k)
		}
	}
	sort.Strings(pfxes)
	return pfxes
}
