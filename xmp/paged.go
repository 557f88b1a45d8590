package xmp

// Paged-text colorant and font writers (xmpTPg, xmpG, stFnt).

// ColorantMode is the color space a colorant is defined in.
type ColorantMode string

// Colorant modes.
const (
	ModeCMYK ColorantMode = "CMYK"
	ModeRGB  ColorantMode = "RGB"
	ModeLab  ColorantMode = "LAB"
)

// ColorantType distinguishes process from spot colorants.
type ColorantType string

// Colorant types.
const (
	ColorantProcess ColorantType = "PROCESS"
	ColorantSpot    ColorantType = "SPOT"
)

// Colorant writes the fields of an xmpG colorant struct. Created by
// Colorants.AddColorant. Write only the channel fields matching the
// colorant's mode.
type Colorant struct {
	stc  *StructElement
	item *Element
}

func (c *Colorant) field(name string, value Text) error {
	f, err := c.stc.Field(XMPColorant, name)
	if err != nil {
		return err
	}
	if err := f.Scalar(value); err != nil {
		return err
	}
	return f.Close()
}

// SwatchName writes xmpG:swatchName.
func (c *Colorant) SwatchName(name string) error { return c.field("swatchName", Text(name)) }

// Mode writes xmpG:mode.
func (c *Colorant) Mode(mode ColorantMode) error { return c.field("mode", Text(string(mode))) }

// Type writes xmpG:type.
func (c *Colorant) Type(t ColorantType) error { return c.field("type", Text(string(t))) }

// Cyan writes xmpG:cyan (0-100).
func (c *Colorant) Cyan(v float64) error { return c.field("cyan", Float(v)) }

// Magenta writes xmpG:magenta (0-100).
func (c *Colorant) Magenta(v float64) error { return c.field("magenta", Float(v)) }

// Yellow writes xmpG:yellow (0-100).
func (c *Colorant) Yellow(v float64) error { return c.field("yellow", Float(v)) }

// Black writes xmpG:black (0-100).
func (c *Colorant) Black(v float64) error { return c.field("black", Float(v)) }

// Red writes xmpG:red (0-255).
func (c *Colorant) Red(v int) error { return c.field("red", Int(int64(v))) }

// Green writes xmpG:green (0-255).
func (c *Colorant) Green(v int) error { return c.field("green", Int(int64(v))) }

// Blue writes xmpG:blue (0-255).
func (c *Colorant) Blue(v int) error { return c.field("blue", Int(int64(v))) }

// L writes xmpG:L (0-100).
func (c *Colorant) L(v float64) error { return c.field("L", Float(v)) }

// A writes xmpG:A (-128 to 127).
func (c *Colorant) A(v int) error { return c.field("A", Int(int64(v))) }

// B writes xmpG:B (-128 to 127).
func (c *Colorant) B(v int) error { return c.field("B", Int(int64(v))) }

// Close ends the colorant struct and unlocks the colorant sequence.
func (c *Colorant) Close() error {
	if err := c.stc.Close(); err != nil {
		return err
	}
	return c.item.Close()
}

// Colorants writes the xmpTPg:Colorants sequence of inks used to print
// the document. Created by the Colorants method; close it before using
// the packet writer again.
type Colorants struct {
	arr  *ArrayElement
	prop *Element
}

// AddColorant appends a colorant. The returned colorant must be closed
// before the next AddColorant.
func (cs *Colorants) AddColorant() (*Colorant, error) {
	item, err := cs.arr.Item()
	if err != nil {
		return nil, err
	}
	stc, err := item.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &Colorant{stc: stc, item: item}, nil
}

// Close ends the colorant sequence and unlocks the packet writer.
func (cs *Colorants) Close() error {
	if err := cs.arr.Close(); err != nil {
		return err
	}
	return cs.prop.Close()
}

// Colorants starts writing xmpTPg:Colorants.
func (w *PacketWriter) Colorants() (*Colorants, error) {
	prop, err := w.Property(XMPPaged, "Colorants")
	if err != nil {
		return nil, err
	}
	arr, err := prop.BeginArray(Ordered)
	if err != nil {
		return nil, err
	}
	return &Colorants{arr: arr, prop: prop}, nil
}

// Font writes the fields of an stFnt font struct. Created by
// Fonts.AddFont.
type Font struct {
	stc  *StructElement
	item *Element
}

func (f *Font) field(name string, value Text) error {
	fld, err := f.stc.Field(XMPFont, name)
	if err != nil {
		return err
	}
	if err := fld.Scalar(value); err != nil {
		return err
	}
	return fld.Close()
}

// Family writes stFnt:fontFamily.
func (f *Font) Family(family string) error { return f.field("fontFamily", Text(family)) }

// Face writes stFnt:fontFace.
func (f *Font) Face(face string) error { return f.field("fontFace", Text(face)) }

// Type writes stFnt:fontType, e.g. "TrueType" or "Type 1".
func (f *Font) Type(t string) error { return f.field("fontType", Text(t)) }

// Name writes stFnt:fontName, the PostScript name.
func (f *Font) Name(name string) error { return f.field("fontName", Text(name)) }

// Version writes stFnt:versionString.
func (f *Font) Version(version string) error { return f.field("versionString", Text(version)) }

// FileName writes stFnt:fontFileName.
func (f *Font) FileName(name string) error { return f.field("fontFileName", Text(name)) }

// Composite writes stFnt:composite.
func (f *Font) Composite(composite bool) error { return f.field("composite", Bool(composite)) }

// ChildFontFiles writes stFnt:childFontFiles, the file names making up
// a composite font.
func (f *Font) ChildFontFiles(files ...string) error {
	fld, err := f.stc.Field(XMPFont, "childFontFiles")
	if err != nil {
		return err
	}
	if err := fld.Value(TextArray(Ordered, files...)); err != nil {
		return err
	}
	return fld.Close()
}

// Close ends the font struct and unlocks the font bag.
func (f *Font) Close() error {
	if err := f.stc.Close(); err != nil {
		return err
	}
	return f.item.Close()
}

// Fonts writes the xmpTPg:Fonts bag of fonts used in the document.
// Created by the Fonts method; close it before using the packet writer
// again.
type Fonts struct {
	arr  *ArrayElement
	prop *Element
}

// AddFont appends a font. The returned font must be closed before the
// next AddFont.
func (fs *Fonts) AddFont() (*Font, error) {
	item, err := fs.arr.Item()
	if err != nil {
		return nil, err
	}
	stc, err := item.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &Font{stc: stc, item: item}, nil
}

// Close ends the font bag and unlocks the packet writer.
func (fs *Fonts) Close() error {
	if err := fs.arr.Close(); err != nil {
		return err
	}
	return fs.prop.Close()
}

// Fonts starts writing xmpTPg:Fonts.
func (w *PacketWriter) Fonts() (*Fonts, error) {
	prop, err := w.Property(XMPPaged, "Fonts")
	if err != nil {
		return nil, err
	}
	arr, err := prop.BeginArray(Unordered)
	if err != nil {
		return nil, err
	}
	return &Fonts{arr: arr, prop: prop}, nil
}
