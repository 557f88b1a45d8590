package xmp

// elementState tracks the element writer's state machine.
type elementState uint8

const (
	// stateOpen accepts content writes and Close.
	stateOpen elementState = iota
	// statePending means a child cursor is outstanding; every write on
	// this element fails until the child is closed.
	statePending
	// stateClosed is terminal.
	stateClosed
)

// contentKind records what kind of content an element carries. The first
// content write fixes the kind; later writes of any kind are rejected.
type contentKind uint8

const (
	contentNone contentKind = iota
	contentScalar
	contentStruct
	contentArray
)

type xmlAttr struct {
	name  string
	value string
}

// Element is a scoped cursor that serializes one RDF element (a property,
// a struct field or an array item) into the packet buffer. At most one
// cursor in a parent/child chain holds write access at a time; the others
// reject writes with ErrStructuralMisuse until control returns to them.
// Close consumes the cursor.
type Element struct {
	w       *PacketWriter
	ns      Namespace
	tag     string
	state   elementState
	content contentKind
	started bool // start tag terminated with ">"
	release func()
}

// newElement validates the name, then writes the start tag (left
// unterminated so content writes can still add attributes). A failed call
// writes nothing.
func newElement(w *PacketWriter, ns Namespace, name string, release func(), attrs ...xmlAttr) (*Element, error) {
	if !isXMLName(name) {
		return nil, invalidName("Element", name)
	}
	prefix := w.names.resolve(ns)
	tag := prefix + ":" + name
	w.buf.WriteString("<")
	w.buf.WriteString(tag)
	for _, a := range attrs {
		w.buf.WriteString(" ")
		w.buf.WriteString(a.name)
		w.buf.WriteString(`="`)
		w.buf.WriteString(escapeXMLAttr(a.value))
		w.buf.WriteString(`"`)
	}
	return &Element{w: w, ns: ns, tag: tag, release: release}, nil
}

func (e *Element) guard(op string) error {
	switch e.state {
	case stateClosed:
		return misuse(op, e.tag, "element already closed")
	case statePending:
		return misuse(op, e.tag, "child writer still open")
	}
	return nil
}

func (e *Element) beginContent(op string) error {
	if err := e.guard(op); err != nil {
		return err
	}
	if e.content != contentNone {
		return misuse(op, e.tag, "content already written")
	}
	return nil
}

// Scalar writes escaped text as the element's content.
func (e *Element) Scalar(v Text) error {
	if err := e.beginContent("Scalar"); err != nil {
		return err
	}
	e.w.buf.WriteString(">")
	e.started = true
	e.content = contentScalar
	e.w.buf.WriteString(escapeXML(string(v)))
	return nil
}

// Date writes a date scalar as the element's content.
func (e *Element) Date(d Date) error {
	return e.Scalar(d.Text())
}

// BeginStruct starts a structured record (rdf:parseType="Resource") and
// hands out an exclusive cursor for its fields. This element rejects all
// writes until the returned cursor is closed.
func (e *Element) BeginStruct() (*StructElement, error) {
	if err := e.beginContent("BeginStruct"); err != nil {
		return nil, err
	}
	e.w.buf.WriteString(` rdf:parseType="Resource">`)
	e.started = true
	e.content = contentStruct
	e.state = statePending
	return &StructElement{e: e, seen: map[string]bool{}}, nil
}

// BeginArray starts an RDF container of the given collection type and
// hands out an exclusive cursor for its items. This element rejects all
// writes until the returned cursor is closed.
func (e *Element) BeginArray(t CollectionType) (*ArrayElement, error) {
	if err := e.beginContent("BeginArray"); err != nil {
		return nil, err
	}
	e.w.buf.WriteString("><")
	e.w.buf.WriteString(t.containerTag())
	e.w.buf.WriteString(">")
	e.started = true
	e.content = contentArray
	e.state = statePending
	return &ArrayElement{e: e, typ: t}, nil
}

// LangAlt writes a language alternative as the element's content: an
// rdf:Alt container whose items carry xml:lang attributes, except the one
// default entry which carries none. More than one default entry is a
// structural misuse and is rejected before any byte is written.
func (e *Element) LangAlt(entries LangAlt) error {
	defaults := 0
	for _, entry := range entries {
		if entry.Lang == "" {
			defaults++
		}
	}
	if defaults > 1 {
		return misuse("LangAlt", e.tag, "more than one default entry")
	}
	arr, err := e.BeginArray(Alternative)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		var item *Element
		if entry.Lang == "" {
			item, err = arr.Item()
		} else {
			item, err = arr.ItemLang(entry.Lang)
		}
		if err != nil {
			return err
		}
		if err := item.Scalar(Text(entry.Value)); err != nil {
			return err
		}
		if err := item.Close(); err != nil {
			return err
		}
	}
	return arr.Close()
}

// Value serializes a complete value tree as the element's content.
func (e *Element) Value(v Value) error {
	switch val := v.(type) {
	case Text:
		return e.Scalar(val)
	case LangAlt:
		return e.LangAlt(val)
	case Struct:
		stc, err := e.BeginStruct()
		if err != nil {
			return err
		}
		for _, f := range val {
			field, err := stc.Field(f.NS, f.Name)
			if err != nil {
				return err
			}
			if err := field.Value(f.Value); err != nil {
				return err
			}
			if err := field.Close(); err != nil {
				return err
			}
		}
		return stc.Close()
	case Array:
		arr, err := e.BeginArray(val.Type)
		if err != nil {
			return err
		}
		for _, member := range val.Items {
			item, err := arr.Item()
			if err != nil {
				return err
			}
			if err := item.Value(member); err != nil {
				return err
			}
			if err := item.Close(); err != nil {
				return err
			}
		}
		return arr.Close()
	default:
		return misuse("Value", e.tag, "unsupported value kind")
	}
}

// Close writes the element's closing tag and consumes the cursor. An
// element without content closes as an empty tag. Closing twice or while
// a child cursor is open fails with ErrStructuralMisuse.
func (e *Element) Close() error {
	switch e.state {
	case stateClosed:
		return misuse("Close", e.tag, "element already closed")
	case statePending:
		return misuse("Close", e.tag, "child writer still open")
	}
	if e.started {
		e.w.buf.WriteString("</")
		e.w.buf.WriteString(e.tag)
		e.w.buf.WriteString(">")
	} else {
		e.w.buf.WriteString("/>")
	}
	e.state = stateClosed
	if e.release != nil {
		e.release()
	}
	return nil
}

// StructElement writes the fields of a structured record. Field names
// must be unique within the struct; only one field cursor may be open at
// a time.
type StructElement struct {
	e       *Element
	seen    map[string]bool
	pending bool
	closed  bool
}

// Field opens a cursor for one struct field. A zero Namespace inherits
// the enclosing element's namespace.
func (s *StructElement) Field(ns Namespace, name string) (*Element, error) {
	if s.closed {
		return nil, misuse("Field", s.e.tag, "struct already closed")
	}
	if s.pending {
		return nil, misuse("Field", s.e.tag, "field writer still open")
	}
	if ns == (Namespace{}) {
		ns = s.e.ns
	}
	key := ns.URI + "\x00" + name
	if s.seen[key] {
		return nil, misuse("Field", s.e.tag, "duplicate field "+name)
	}
	field, err := newElement(s.e.w, ns, name, func() { s.pending = false })
	if err != nil {
		return nil, err
	}
	s.seen[key] = true
	s.pending = true
	return field, nil
}

// Close ends the struct and returns write access to the parent element.
// The parent's own closing tag is written by its Close.
func (s *StructElement) Close() error {
	if s.closed {
		return misuse("Close", s.e.tag, "struct already closed")
	}
	if s.pending {
		return misuse("Close", s.e.tag, "field writer still open")
	}
	s.closed = true
	s.e.state = stateOpen
	return nil
}

// ArrayElement writes the items of an RDF container. Only one item cursor
// may be open at a time.
type ArrayElement struct {
	e       *Element
	typ     CollectionType
	pending bool
	closed  bool
}

// Item opens a cursor for the next rdf:li array item.
func (a *ArrayElement) Item() (*Element, error) {
	return a.item()
}

// ItemLang opens a cursor for the next rdf:li item carrying an xml:lang
// attribute.
func (a *ArrayElement) ItemLang(lang string) (*Element, error) {
	return a.item(xmlAttr{name: "xml:lang", value: lang})
}

func (a *ArrayElement) item(attrs ...xmlAttr) (*Element, error) {
	if a.closed {
		return nil, misuse("Item", a.e.tag, "array already closed")
	}
	if a.pending {
		return nil, misuse("Item", a.e.tag, "item writer still open")
	}
	item, err := newElement(a.e.w, RDF, "li", func() { a.pending = false }, attrs...)
	if err != nil {
		return nil, err
	}
	a.pending = true
	return item, nil
}

// Close writes the container's closing tag and returns write access to
// the parent element.
func (a *ArrayElement) Close() error {
	if a.closed {
		return misuse("Close", a.e.tag, "array already closed")
	}
	if a.pending {
		return misuse("Close", a.e.tag, "item writer still open")
	}
	a.e.w.buf.WriteString("</")
	a.e.w.buf.WriteString(a.typ.containerTag())
	a.e.w.buf.WriteString(">")
	a.closed = true
	a.e.state = stateOpen
	return nil
}
