package parser

import (
	"io"
	"os"

	"github.com/andaru/arxml/arerr"
	"github.com/andaru/arxml/dispatch"
	"github.com/andaru/arxml/model"
	"github.com/andaru/arxml/schema"
	"github.com/andaru/arxml/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	xpRoot          = xpath.MustCompile(`/*`)
	xpRootNamespace = xpath.MustCompile(`namespace-uri(/*)`)
)

// Parser extracts communication models from ECU extract documents.
//
// A Parser only holds configuration; it may be reused, and every call
// produces a new model.Document.
type Parser struct {
	namespace   *string
	validator   schema.Validator
	missingName MissingNamePolicy
}

// New returns a Parser configured by opts.
func New(opts ...Option) *Parser {
	p := &Parser{validator: schema.Nop, missingName: SkipUnnamed}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile parses the ECU extract at path using a Parser configured by opts.
func ParseFile(path string, opts ...Option) (*model.Document, error) {
	return New(opts...).ParseFile(path)
}

// Parse parses the ECU extract read from r using a Parser configured by opts.
func Parse(r io.Reader, opts ...Option) (*model.Document, error) {
	return New(opts...).Parse(r)
}

// ParseFile loads and parses the ECU extract at path.
func (p *Parser) ParseFile(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open ECU extract")
	}
	defer f.Close()

	tree, err := load(f)
	if err != nil {
		return nil, errors.WithStack(arerr.MalformedDocument(err, arerr.WithPath(path)))
	}
	glog.V(1).Infof("loaded %s", path)
	return p.ParseTree(tree)
}

// Parse loads and parses the ECU extract read from r.
func (p *Parser) Parse(r io.Reader) (*model.Document, error) {
	tree, err := load(r)
	if err != nil {
		return nil, errors.WithStack(arerr.MalformedDocument(err))
	}
	return p.ParseTree(tree)
}

// ParseTree parses an already loaded document. tree is normally the
// document node returned by xmlquery.Parse; an element node is taken to
// be the document root element.
func (p *Parser) ParseTree(tree *xmlquery.Node) (*model.Document, error) {
	root := rootElement(tree)
	if root == nil {
		return nil, errors.WithStack(arerr.MalformedDocument(errors.New("document has no root element")))
	}

	ns, err := p.resolveNamespace(tree, root)
	if err != nil {
		return nil, err
	}
	release := schema.DetectRelease(root, ns)
	glog.V(1).Infof("document root %s namespace %q release %q", root.Data, ns, release)

	if err := p.validator.Validate(root, release); err != nil {
		return nil, errors.WithStack(arerr.InvalidDocument(err, arerr.WithNamespace(ns)))
	}

	w := &walker{
		table:       dispatch.New(ns),
		doc:         model.NewDocument(),
		missingName: p.missingName,
	}
	w.doc.Namespace = ns
	w.doc.Release = release
	if err := w.walk(root); err != nil {
		return nil, err
	}

	if glog.V(1) {
		for _, name := range model.BucketNames() {
			glog.Infof("%s: %d records", name, w.doc.Bucket(name).Len())
		}
	}
	return w.doc, nil
}

// resolveNamespace returns the namespace URI element names are matched
// in: the configured one, else the root element's default namespace
// declaration, else the root element's own namespace.
func (p *Parser) resolveNamespace(tree, root *xmlquery.Node) (string, error) {
	if p.namespace != nil {
		return *p.namespace, nil
	}
	if ns, ok := xmlutil.NodePrefixMap(root).Default(); ok && ns != "" {
		return ns, nil
	}
	if ns, _ := xpRootNamespace.Evaluate(xmlquery.CreateXPathNavigator(tree)).(string); ns != "" {
		return ns, nil
	}
	return "", errors.WithStack(arerr.MissingNamespace(root.Data,
		arerr.WithMessage("root element declares no namespace")))
}

func rootElement(tree *xmlquery.Node) *xmlquery.Node {
	switch {
	case tree == nil:
		return nil
	case tree.Type == xmlquery.ElementNode:
		return tree
	}
	return xmlquery.QuerySelector(tree, xpRoot)
}

// load parses r into an xmlquery tree. A leading UTF-8 byte order mark,
// as written by some authoring tools, is removed first.
func load(r io.Reader) (*xmlquery.Node, error) {
	bom := unicode.BOMOverride(encoding.Nop.NewDecoder())
	return xmlquery.Parse(transform.NewReader(r, bom))
}
