package xmlutil

import (
	"encoding/xml"
	"strings"

	"github.com/antchfx/xmlquery"
)

// XMLName is a shortcut for creating xml.Name, where typically you want at least
// a local name, and perhaps a namespace value as well.
func XMLName(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// NodeName returns the namespace qualified name of an element node. The
// Space field holds the namespace URI, never the prefix.
func NodeName(n *xmlquery.Node) xml.Name {
	return xml.Name{Space: n.NamespaceURI, Local: n.Data}
}

// Text returns the text content of n appearing before its first
// non-text child, unmodified. Text following a child element or
// comment is not included.
func Text(n *xmlquery.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.TextNode && c.Type != xmlquery.CharDataNode {
			break
		}
		sb.WriteString(c.Data)
	}
	return sb.String()
}

// Path returns a slash separated path of element local names from the
// document root down to n, for diagnostics.
func Path(n *xmlquery.Node) string {
	var parts []string
	for ; n != nil; n = n.Parent {
		if n.Type == xmlquery.ElementNode {
			parts = append(parts, n.Data)
		}
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return "/" + strings.Join(parts, "/")
}

// Elements returns the element children of n in document order.
func Elements(n *xmlquery.Node) (elems []*xmlquery.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			elems = append(elems, c)
		}
	}
	return elems
}
