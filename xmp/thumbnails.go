package xmp

// Thumbnail writes the fields of an xmpGImg thumbnail struct. Created
// by Thumbnails.AddThumbnail.
type Thumbnail struct {
	stc  *StructElement
	item *Element
}

func (t *Thumbnail) field(name string, value Text) error {
	f, err := t.stc.Field(XMPImage, name)
	if err != nil {
		return err
	}
	if err := f.Scalar(value); err != nil {
		return err
	}
	return f.Close()
}

// Format writes xmpGImg:format. "JPEG" is the only format XMP defines.
func (t *Thumbnail) Format(format string) error { return t.field("format", Text(format)) }

// Width writes xmpGImg:width in pixels.
func (t *Thumbnail) Width(px int) error { return t.field("width", Int(int64(px))) }

// Height writes xmpGImg:height in pixels.
func (t *Thumbnail) Height(px int) error { return t.field("height", Int(int64(px))) }

// Image writes xmpGImg:image, the base64-encoded image data.
func (t *Thumbnail) Image(base64 string) error { return t.field("image", Text(base64)) }

// Close ends the thumbnail struct and unlocks the thumbnail list.
func (t *Thumbnail) Close() error {
	if err := t.stc.Close(); err != nil {
		return err
	}
	return t.item.Close()
}

// Thumbnails writes the xmp:Thumbnails alternative list of preview
// images. Created by the Thumbnails method; close it before using the
// packet writer again.
type Thumbnails struct {
	arr  *ArrayElement
	prop *Element
}

// AddThumbnail appends a thumbnail. The returned thumbnail must be
// closed before the next AddThumbnail.
func (ts *Thumbnails) AddThumbnail() (*Thumbnail, error) {
	item, err := ts.arr.Item()
	if err != nil {
		return nil, err
	}
	stc, err := item.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &Thumbnail{stc: stc, item: item}, nil
}

// Close ends the thumbnail list and unlocks the packet writer.
func (ts *Thumbnails) Close() error {
	if err := ts.arr.Close(); err != nil {
		return err
	}
	return ts.prop.Close()
}

// Thumbnails starts writing xmp:Thumbnails.
func (w *PacketWriter) Thumbnails() (*Thumbnails, error) {
	prop, err := w.Property(XMPBasic, "Thumbnails")
	if err != nil {
		return nil, err
	}
	arr, err := prop.BeginArray(Alternative)
	if err != nil {
		return nil, err
	}
	return &Thumbnails{arr: arr, prop: prop}, nil
}
