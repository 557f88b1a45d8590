package xmp

import "bytes"

// DefaultPadding is the number of padding bytes appended to a fresh
// packet so editors can update it in place.
const DefaultPadding = 2048

const (
	packetHeader = "<?xpacket begin=\"\uFEFF\" id=\"W5M0MpCehiHzreSzNTczkc9d\"?>"
	// end="w" marks a packet with writable padding, end="r" one that
	// must be rewritten as a whole.
	packetTrailerWritable = `<?xpacket end="w"?>`
	packetTrailerReadOnly = `<?xpacket end="r"?>`

	defaultToolkit = "Geoknoesis xmp-go 0.1.0"
)

// PacketWriter assembles one XMP packet. Create it with New, add
// properties, and call Finish or FinishInto exactly once. The writer is
// single-owner: it is not safe for concurrent use.
type PacketWriter struct {
	buf      bytes.Buffer
	names    *registry
	about    string
	toolkit  string
	padding  int
	pending  bool
	finished bool
	records  []record
}

// record is the snapshot of one property written through SetProperty,
// kept for the JSON-LD export.
type record struct {
	ns    Namespace
	name  string
	value Value
}

// Option configures a PacketWriter.
type Option func(*PacketWriter)

// WithAbout sets the rdf:about attribute of the packet's description.
// Empty by default.
func WithAbout(about string) Option {
	return func(w *PacketWriter) { w.about = about }
}

// WithToolkit sets the x:xmptk toolkit identifier.
func WithToolkit(toolkit string) Option {
	return func(w *PacketWriter) { w.toolkit = toolkit }
}

// WithPadding sets the amount of trailing padding in a fresh packet.
// Zero produces a minimal read-only packet.
func WithPadding(n int) Option {
	return func(w *PacketWriter) { w.padding = n }
}

// New creates an empty packet writer.
func New(opts ...Option) *PacketWriter {
	w := &PacketWriter{
		names:   newRegistry(),
		toolkit: defaultToolkit,
		padding: DefaultPadding,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Property opens a scoped cursor for one top-level property element. The
// writer rejects every other call until the cursor is closed.
func (w *PacketWriter) Property(ns Namespace, name string) (*Element, error) {
	if w.finished {
		return nil, &WriteError{Op: "Property", Element: name, Err: ErrFinished}
	}
	if w.pending {
		return nil, misuse("Property", name, "previous property writer still open")
	}
	e, err := newElement(w, ns, name, func() { w.pending = false })
	if err != nil {
		return nil, err
	}
	w.pending = true
	return e, nil
}

// SetProperty writes one property with a complete value tree. The tree is
// validated up front, so a rejected call leaves the packet untouched.
func (w *PacketWriter) SetProperty(ns Namespace, name string, value Value) error {
	if w.finished {
		return &WriteError{Op: "SetProperty", Element: name, Err: ErrFinished}
	}
	if w.pending {
		return misuse("SetProperty", name, "previous property writer still open")
	}
	if !isXMLName(name) {
		return invalidName("SetProperty", name)
	}
	if err := validateValue(value, ns); err != nil {
		return err
	}
	e, err := w.Property(ns, name)
	if err != nil {
		return err
	}
	if err := e.Value(value); err != nil {
		return err
	}
	if err := e.Close(); err != nil {
		return err
	}
	w.records = append(w.records, record{ns: ns, name: name, value: value})
	return nil
}

// validateValue checks a value tree before any byte is written.
func validateValue(v Value, inherited Namespace) error {
	switch val := v.(type) {
	case Text:
		return nil
	case LangAlt:
		defaults := 0
		for _, entry := range val {
			if entry.Lang == "" {
				defaults++
			}
		}
		if defaults > 1 {
			return misuse("SetProperty", "", "language alternative with more than one default entry")
		}
		return nil
	case Struct:
		seen := map[string]bool{}
		for _, f := range val {
			if !isXMLName(f.Name) {
				return invalidName("SetProperty", f.Name)
			}
			ns := f.NS
			if ns == (Namespace{}) {
				ns = inherited
			}
			key := ns.URI + "\x00" + f.Name
			if seen[key] {
				return misuse("SetProperty", f.Name, "duplicate struct field")
			}
			seen[key] = true
			if f.Value == nil {
				return misuse("SetProperty", f.Name, "nil field value")
			}
			if err := validateValue(f.Value, ns); err != nil {
				return err
			}
		}
		return nil
	case Array:
		for _, item := range val.Items {
			if item == nil {
				return misuse("SetProperty", "", "nil array item")
			}
			if err := validateValue(item, inherited); err != nil {
				return err
			}
		}
		return nil
	default:
		return misuse("SetProperty", "", "unsupported value kind")
	}
}

// envelope assembles the packet from header through </x:xmpmeta>, without
// padding or trailer, and consumes the writer.
func (w *PacketWriter) envelope() ([]byte, error) {
	if w.finished {
		return nil, &WriteError{Op: "Finish", Err: ErrFinished}
	}
	if w.pending {
		return nil, misuse("Finish", "", "property writer still open")
	}
	w.finished = true

	var out bytes.Buffer
	out.Grow(len(packetHeader) + 280 + w.buf.Len())
	out.WriteString(packetHeader)
	out.WriteString(`<x:xmpmeta xmlns:x="adobe:ns:meta/" x:xmptk="`)
	out.WriteString(escapeXMLAttr(w.toolkit))
	out.WriteString(`"><rdf:RDF xmlns:rdf="`)
	out.WriteString(RDF.URI)
	out.WriteString(`"><rdf:Description rdf:about="`)
	out.WriteString(escapeXMLAttr(w.about))
	out.WriteString(`"`)
	for _, ns := range w.names.bindings() {
		out.WriteString(` xmlns:`)
		out.WriteString(ns.Prefix)
		out.WriteString(`="`)
		out.WriteString(escapeXMLAttr(ns.URI))
		out.WriteString(`"`)
	}
	out.WriteString(`>`)
	out.Write(w.buf.Bytes())
	out.WriteString(`</rdf:Description></rdf:RDF></x:xmpmeta>`)
	return out.Bytes(), nil
}

// Finish wraps the accumulated properties in the XMP packet envelope and
// returns the packet. The writer is consumed; every later call fails with
// ErrFinished.
func (w *PacketWriter) Finish() ([]byte, error) {
	env, err := w.envelope()
	if err != nil {
		return nil, err
	}
	if w.padding <= 0 {
		return append(env, packetTrailerReadOnly...), nil
	}
	out := make([]byte, 0, len(env)+w.padding+len(packetTrailerWritable))
	out = append(out, env...)
	out = append(out, bytes.Repeat([]byte{' '}, w.padding)...)
	out = append(out, packetTrailerWritable...)
	return out, nil
}

// FinishInto replaces the xpacket region inside existing with the new
// packet, preserving the region's total byte length by adjusting padding.
// The surrounding bytes are copied verbatim, so the result can be written
// back over a file's metadata segment in place. Fails with ErrNoPacket if
// existing holds no xpacket markers, and with ErrPacketTooLarge if the
// new packet does not fit the region.
func (w *PacketWriter) FinishInto(existing []byte) ([]byte, error) {
	start := bytes.Index(existing, []byte("<?xpacket begin"))
	if start < 0 {
		return nil, ErrNoPacket
	}
	endMark := bytes.Index(existing[start:], []byte("<?xpacket end="))
	if endMark < 0 {
		return nil, ErrNoPacket
	}
	endMark += start
	closeIdx := bytes.Index(existing[endMark:], []byte("?>"))
	if closeIdx < 0 {
		return nil, ErrNoPacket
	}
	regionEnd := endMark + closeIdx + 2
	region := regionEnd - start

	env, err := w.envelope()
	if err != nil {
		return nil, err
	}
	need := len(env) + len(packetTrailerWritable)
	if need > region {
		return nil, ErrPacketTooLarge
	}
	out := make([]byte, 0, len(existing))
	out = append(out, existing[:start]...)
	out = append(out, env...)
	out = append(out, bytes.Repeat([]byte{' '}, region-need)...)
	out = append(out, packetTrailerWritable...)
	out = append(out, existing[regionEnd:]...)
	return out, nil
}
