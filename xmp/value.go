package xmp

import "strconv"

// ValueKind identifies property value types.
type ValueKind uint8

const (
	// KindText represents a scalar text value.
	KindText ValueKind = iota
	// KindLangAlt represents language-alternative text.
	KindLangAlt
	// KindStruct represents a structured record.
	KindStruct
	// KindArray represents an array value.
	KindArray
)

// Value is a property value. The set of implementations is closed: Text,
// LangAlt, Struct and Array. The element writer switches exhaustively over
// these kinds.
type Value interface {
	Kind() ValueKind
}

// Text is a scalar text value. Escaping happens at serialization time;
// store the raw text.
type Text string

// Kind returns KindText.
func (t Text) Kind() ValueKind { return KindText }

// Bool formats a boolean the way XMP spells it: "True" or "False".
func Bool(v bool) Text {
	if v {
		return "True"
	}
	return "False"
}

// Int formats an integer scalar.
func Int(v int64) Text { return Text(strconv.FormatInt(v, 10)) }

// Float formats a floating-point scalar with the shortest exact
// representation.
func Float(v float64) Text { return Text(strconv.FormatFloat(v, 'f', -1, 64)) }

// LangEntry is one entry of a language alternative: a text together with
// an optional RFC 3066 language tag. An empty Lang marks the default
// entry; a LangAlt may contain at most one of those.
type LangEntry struct {
	// Lang is the language tag, or empty for the default entry.
	Lang string
	// Value is the text in that language.
	Value string
}

// LangAlt is the same text in multiple languages, in caller-given order.
type LangAlt []LangEntry

// Kind returns KindLangAlt.
func (l LangAlt) Kind() ValueKind { return KindLangAlt }

// Field is one field of a Struct.
type Field struct {
	// NS is the field's namespace. The zero Namespace inherits the
	// enclosing element's namespace.
	NS Namespace
	// Name is the field name; must be a valid XML name.
	Name string
	// Value is the field value.
	Value Value
}

// Struct is an insertion-ordered record. Field names must be unique
// within one struct instance.
type Struct []Field

// Kind returns KindStruct.
func (s Struct) Kind() ValueKind { return KindStruct }

// CollectionType identifies the RDF container used for an array.
type CollectionType uint8

const (
	// Unordered serializes as rdf:Bag.
	Unordered CollectionType = iota
	// Ordered serializes as rdf:Seq.
	Ordered
	// Alternative serializes as rdf:Alt.
	Alternative
)

// containerTag returns the RDF container element name for the collection type.
func (c CollectionType) containerTag() string {
	switch c {
	case Ordered:
		return "rdf:Seq"
	case Alternative:
		return "rdf:Alt"
	default:
		return "rdf:Bag"
	}
}

// Array is an ordered sequence of values tagged with its RDF container
// type.
type Array struct {
	// Type selects the RDF container: Bag, Seq or Alt.
	Type CollectionType
	// Items are the array members, in serialization order.
	Items []Value
}

// Kind returns KindArray.
func (a Array) Kind() ValueKind { return KindArray }

// TextArray builds an array of scalar texts.
func TextArray(t CollectionType, items ...string) Array {
	values := make([]Value, len(items))
	for i, item := range items {
		values[i] = Text(item)
	}
	return Array{Type: t, Items: values}
}
