// Package dispatch provides the element dispatch table used while
// walking an ECU extract.
//
// The table maps namespace qualified element names to one of two entry
// kinds. Attribute entries (SHORT-NAME, LENGTH, FRAME-LENGTH, L-2) name
// the record field an element's text is copied into. Container entries
// (I-SIGNAL, SYSTEM-SIGNAL, COMPU-METHOD, SIGNAL-I-PDU, FRAME,
// PHYSICAL-CHANNEL) name the Category of record the element produces.
//
// Tables are built per document, after the document's namespace URI is
// known, so matching is by namespace URI and never by prefix.
package dispatch
