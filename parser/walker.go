package parser

import (
	"github.com/andaru/arxml/arerr"
	"github.com/andaru/arxml/dispatch"
	"github.com/andaru/arxml/model"
	"github.com/andaru/arxml/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// walker holds the state of one parse run.
type walker struct {
	table       *dispatch.Table
	doc         *model.Document
	missingName MissingNamePolicy
}

// walk descends depth-first from the element n. A container element is
// handed to parseContainer and not descended into any further; any other
// element has its child elements walked in document order.
func (w *walker) walk(n *xmlquery.Node) error {
	if entry, ok := w.table.Lookup(xmlutil.NodeName(n)); ok {
		switch entry.Kind {
		case dispatch.KindContainer:
			return w.parseContainer(n, entry.Category)
		case dispatch.KindAttribute:
			// attribute elements outside a container carry nothing we
			// file; they may still be walked like any other element.
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if err := w.walk(c); err != nil {
			return err
		}
	}
	return nil
}

// parseContainer builds a record from the attribute elements among n's
// direct children and files it into the bucket of category c.
func (w *walker) parseContainer(n *xmlquery.Node, c dispatch.Category) error {
	r := model.NewRecord()
	for _, child := range xmlutil.Elements(n) {
		entry, ok := w.table.Lookup(xmlutil.NodeName(child))
		if !ok {
			continue
		}
		switch entry.Kind {
		case dispatch.KindAttribute:
			r.Set(entry.Key, xmlutil.Text(child))
		case dispatch.KindContainer:
			// nested containers do not contribute to this record
		}
	}

	if _, ok := r.Lookup(model.KeyName); !ok {
		path := xmlutil.Path(n)
		switch w.missingName {
		case RejectUnnamed:
			return errors.WithStack(arerr.MissingElement("SHORT-NAME",
				arerr.WithPath(path), arerr.WithNamespace(w.table.Namespace())))
		case KeepUnnamed:
			glog.V(1).Infof("%s at %s has no SHORT-NAME; filing as %q", c, path, model.Missing)
		default:
			glog.Warningf("skipping %s at %s: no SHORT-NAME", c, path)
			return nil
		}
	}

	merged, err := w.doc.Append(c.Bucket(), r)
	if err != nil {
		return err
	}
	if glog.V(2) {
		if merged {
			glog.Infof("%s %q merged into %s", c, r.Name(), c.Bucket())
		} else {
			glog.Infof("%s %q added to %s", c, r.Name(), c.Bucket())
		}
	}
	return nil
}
