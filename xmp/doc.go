// Package xmp writes XMP metadata packets, step by step.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// XMP is an RDF/XML-based metadata format developed by Adobe. Packets are
// either embedded into files (PDF, JPEG, TIFF) or stored in a separate
// side-car file.
//
// Start by creating a PacketWriter, add properties to it, and call Finish
// to obtain the packet as a byte slice. Simple properties are written with
// SetProperty or one of the named convenience methods. Composite values
// (structs, arrays, language alternatives) can be written either as a Value
// tree in one call, or incrementally through scoped element cursors:
//
//	w := xmp.New()
//	w.Creator("Martin Haug")
//	w.Title(xmp.LangAlt{{Lang: "de", Value: "Titel"}, {Value: "Title"}})
//	w.NumPages(3)
//
//	packet, err := w.Finish()
//
// A scoped cursor obtained from Property, BeginStruct or BeginArray holds
// exclusive write access to the output buffer. While a child cursor is
// outstanding, every write on its parent fails with ErrStructuralMisuse;
// closing the child hands access back. A closed cursor rejects all further
// writes. Misuse therefore surfaces as an error at the offending call and
// never as malformed XML in the output.
//
// The writer is not safe for concurrent use; every packet is built by a
// single goroutine.
//
// Parsing or validating existing XMP packets is out of scope. FinishInto
// supports in-place rewriting of the packet region inside an existing
// buffer, but locating that region within a PDF or JPEG is the caller's
// business.
package xmp
