package arerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tag identifies the kind of a parse failure.
type Tag string

const (
	// TagMalformedDocument is used when the input is not well-formed XML.
	TagMalformedDocument Tag = "malformed-document"
	// TagMissingNamespace is used when no namespace URI can be resolved
	// for the document root element.
	TagMissingNamespace Tag = "missing-namespace"
	// TagMissingElement is used when a required child element is absent.
	TagMissingElement Tag = "missing-element"
	// TagInvalidDocument is used when the validation hook rejects the document.
	TagInvalidDocument Tag = "invalid-document"
	// TagUnknownBucket is used when a record is filed into a bucket the
	// document does not have.
	TagUnknownBucket Tag = "unknown-bucket"
)

// Error represents an ECU extract parsing error.
type Error struct {
	Tag       Tag
	Element   string
	Namespace string
	Path      string
	Message   string

	cause error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("arxml error tag:%s", e.Tag)
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.Namespace != "" {
		s += " namespace:" + e.Namespace
	}
	if e.Path != "" {
		s += " path:" + e.Path
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

// Cause returns the underlying error, if any (see github.com/pkg/errors).
func (e *Error) Cause() error { return e.cause }

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error { return e.cause }

// As returns the first *Error found in err's cause chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is returns true if err is, or wraps, an *Error with the given tag.
func Is(err error, tag Tag) bool {
	e, ok := As(err)
	return ok && e.Tag == tag
}

func MalformedDocument(cause error, opts ...Option) *Error {
	e := &Error{Tag: TagMalformedDocument, cause: cause}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func MissingNamespace(elementName string, opts ...Option) *Error {
	e := &Error{Tag: TagMissingNamespace, Element: elementName}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func MissingElement(elementName string, opts ...Option) *Error {
	e := &Error{Tag: TagMissingElement, Element: elementName}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func InvalidDocument(cause error, opts ...Option) *Error {
	e := &Error{Tag: TagInvalidDocument, cause: cause}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func UnknownBucket(bucket string, opts ...Option) *Error {
	e := &Error{Tag: TagUnknownBucket, Message: fmt.Sprintf("no bucket %q", bucket)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
