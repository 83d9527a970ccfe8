/*
Package arxml extracts the communication data model of an AUTOSAR ECU
extract: its signals, PDUs, compu-methods, frames and physical channels.

The work is split over several packages. The parser package loads a
document and walks it, using a dispatch.Table built for the document's
namespace to recognise container elements (FRAME, I-SIGNAL and so on)
and the attribute elements below them (SHORT-NAME, LENGTH,
FRAME-LENGTH, L-2). The resulting model.Document groups one
model.Record per named entity into five buckets; containers sharing a
SHORT-NAME are merged into a single record.

Records never fail on lookup: an attribute an entity does not define
reads as model.Missing.

See the parser sub-directory for options controlling namespace
resolution, validation and containers lacking a SHORT-NAME.
*/
package arxml
