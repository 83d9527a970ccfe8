// Package arerr defines the errors returned while extracting a
// communication model from an ECU extract.
//
// Every failure carries a Tag naming its kind. Missing optional
// attributes and unrecognised elements are not errors and never
// produce one.
package arerr
