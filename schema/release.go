package schema

import (
	"regexp"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
)

const nsXSI = "http://www.w3.org/2001/XMLSchema-instance"

var (
	reSchemaFile = regexp.MustCompile(`(?i)AUTOSAR_([0-9]+(?:-[0-9]+)*)\.xsd$`)
	reNSRelease  = regexp.MustCompile(`^https?://autosar\.org/(?:schema/)?(r[0-9]+\.[0-9]+|[0-9]+\.[0-9]+(?:\.[0-9]+)?)/?$`)
)

// DetectRelease returns the AUTOSAR schema release of the document whose
// root element is root, given its resolved namespace URI. An empty string
// is returned if no release can be determined.
func DetectRelease(root *xmlquery.Node, nsURI string) string {
	if loc := schemaLocation(root); loc != "" {
		if rel := releaseFromLocation(loc); rel != "" {
			return rel
		}
		glog.V(2).Infof("schema: no release in schemaLocation %q", loc)
	}
	return releaseFromNamespace(nsURI)
}

func schemaLocation(root *xmlquery.Node) string {
	if root == nil {
		return ""
	}
	for _, attr := range root.Attr {
		if attr.Name.Local != "schemaLocation" {
			continue
		}
		if attr.NamespaceURI == nsXSI || attr.Name.Space == "xsi" {
			return attr.Value
		}
	}
	return ""
}

// releaseFromLocation reads the release from the schema file named by the
// last entry of an xsi:schemaLocation value ("<nsURI> <file>" pairs).
func releaseFromLocation(loc string) string {
	fields := strings.Fields(loc)
	if len(fields) == 0 {
		return ""
	}
	file := fields[len(fields)-1]
	if i := strings.LastIndexAny(file, `/\`); i >= 0 {
		file = file[i+1:]
	}
	m := reSchemaFile.FindStringSubmatch(file)
	if m == nil {
		return ""
	}
	return strings.ReplaceAll(m[1], "-", ".")
}

func releaseFromNamespace(nsURI string) string {
	if m := reNSRelease.FindStringSubmatch(nsURI); m != nil {
		return m[1]
	}
	return ""
}
