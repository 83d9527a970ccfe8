/*
Package parser extracts the communication model of an ECU extract.

The document is loaded into an xmlquery tree and the namespace URI of
its root element resolved. A dispatch.Table qualified by that namespace
drives a depth-first walk from the root: when an element matches a
container entry (FRAME, I-SIGNAL and so on) a record is built from the
attribute elements among its direct children and filed into the
container's bucket, merging with any record of the same name. Every
other element is walked through.

	doc, err := parser.ParseFile("EcuExtract.arxml")
	if err != nil {
		return err
	}
	f1 := doc.Frames().Record("F1")
	length := f1.Get(model.KeyLength) // model.Missing if absent

Containers without a SHORT-NAME are skipped by default; see
WithMissingName.
*/
package parser
