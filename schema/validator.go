package schema

import "github.com/antchfx/xmlquery"

// Validator checks a document before it is walked. root is the document
// root element and release the detected AUTOSAR release (possibly empty).
// A non-nil error stops the parse.
type Validator interface {
	Validate(root *xmlquery.Node, release string) error
}

// ValidatorFunc is a function implementing Validator
type ValidatorFunc func(root *xmlquery.Node, release string) error

func (f ValidatorFunc) Validate(root *xmlquery.Node, release string) error { return f(root, release) }

// Nop is a Validator accepting every document.
var Nop Validator = nop{}

type nop struct{}

func (nop) Validate(*xmlquery.Node, string) error { return nil }
