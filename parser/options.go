package parser

import (
	"fmt"

	"github.com/andaru/arxml/schema"
)

// MissingNamePolicy selects what happens to a container element that has
// no SHORT-NAME child.
type MissingNamePolicy int

const (
	// SkipUnnamed drops the container's record and logs a warning.
	SkipUnnamed MissingNamePolicy = iota
	// RejectUnnamed fails the parse with a missing-element error.
	RejectUnnamed
	// KeepUnnamed files the record under the model.Missing placeholder
	// name, where all unnamed containers of a bucket merge together.
	KeepUnnamed
)

func (p MissingNamePolicy) String() string {
	switch p {
	case SkipUnnamed:
		return "skip"
	case RejectUnnamed:
		return "reject"
	case KeepUnnamed:
		return "keep"
	default:
		return fmt.Sprintf("MissingNamePolicy(%d)", int(p))
	}
}

// Option is a Parser option function
type Option func(*Parser)

// WithNamespace sets the namespace URI element names are matched in,
// instead of resolving it from the document root.
func WithNamespace(nsURI string) Option { return func(p *Parser) { p.namespace = &nsURI } }

// WithValidator sets the validation hook run before the document is
// walked. A nil Validator restores the default, schema.Nop.
func WithValidator(v schema.Validator) Option {
	return func(p *Parser) {
		if v == nil {
			v = schema.Nop
		}
		p.validator = v
	}
}

// WithMissingName sets the policy for containers lacking a SHORT-NAME.
func WithMissingName(policy MissingNamePolicy) Option {
	return func(p *Parser) { p.missingName = policy }
}
