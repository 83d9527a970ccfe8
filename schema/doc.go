// Copyright 2018 Andrew Fort

// Package schema provides the document checks run before an ECU extract
// is walked.
//
// Release detection
//
// DetectRelease determines the AUTOSAR schema release a document was
// written against. The xsi:schemaLocation attribute of the root element
// is consulted first, as it names the schema file (for example
// AUTOSAR_4-2-2.xsd, giving "4.2.2"). Documents without one fall back to
// the release encoded in the namespace URI, which is coarser
// ("http://autosar.org/schema/r4.0" gives "r4.0").
//
// Validation
//
// A Validator is run on the root element once the release is known. The
// parser's default Validator is Nop: documents are not validated against
// an XML schema. Callers that need validation supply their own.
package schema
