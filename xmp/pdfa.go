package xmp

// PDF/A extension schema descriptions. PDF/A requires every property
// outside the predefined schemas to be described in the packet itself,
// under pdfaExtension:schemas.

// PropertyCategory says whether an extension property is stored in the
// file or derived from it.
type PropertyCategory string

// Property categories.
const (
	CategoryInternal PropertyCategory = "internal"
	CategoryExternal PropertyCategory = "external"
)

// SchemaField writes the fields of a pdfaField struct describing one
// field of an extension value type. Created by SchemaFields.AddField.
type SchemaField struct {
	stc  *StructElement
	item *Element
}

func (f *SchemaField) field(name string, value Text) error {
	fld, err := f.stc.Field(PDFAField, name)
	if err != nil {
		return err
	}
	if err := fld.Scalar(value); err != nil {
		return err
	}
	return fld.Close()
}

// Name writes pdfaField:name.
func (f *SchemaField) Name(name string) error { return f.field("name", Text(name)) }

// ValueType writes pdfaField:valueType.
func (f *SchemaField) ValueType(t string) error { return f.field("valueType", Text(t)) }

// Description writes pdfaField:description.
func (f *SchemaField) Description(desc string) error { return f.field("description", Text(desc)) }

// Close ends the field struct and unlocks the field sequence.
func (f *SchemaField) Close() error {
	if err := f.stc.Close(); err != nil {
		return err
	}
	return f.item.Close()
}

// SchemaFields writes the pdfaType:field sequence of an extension value
// type. Created by SchemaType.Fields.
type SchemaFields struct {
	arr   *ArrayElement
	field *Element
}

// AddField appends a field description. The returned field must be
// closed before the next AddField.
func (fs *SchemaFields) AddField() (*SchemaField, error) {
	item, err := fs.arr.Item()
	if err != nil {
		return nil, err
	}
	stc, err := item.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &SchemaField{stc: stc, item: item}, nil
}

// Close ends the field sequence and unlocks the value type.
func (fs *SchemaFields) Close() error {
	if err := fs.arr.Close(); err != nil {
		return err
	}
	return fs.field.Close()
}

// SchemaType writes the fields of a pdfaType struct describing one value
// type introduced by an extension schema. Created by
// SchemaTypes.AddType.
type SchemaType struct {
	stc  *StructElement
	item *Element
}

func (t *SchemaType) field(name string, value Text) error {
	fld, err := t.stc.Field(PDFAType, name)
	if err != nil {
		return err
	}
	if err := fld.Scalar(value); err != nil {
		return err
	}
	return fld.Close()
}

// Type writes pdfaType:type, the value type's name.
func (t *SchemaType) Type(name string) error { return t.field("type", Text(name)) }

// NamespaceURI writes pdfaType:namespaceURI.
func (t *SchemaType) NamespaceURI(uri string) error { return t.field("namespaceURI", Text(uri)) }

// Prefix writes pdfaType:prefix.
func (t *SchemaType) Prefix(prefix string) error { return t.field("prefix", Text(prefix)) }

// Description writes pdfaType:description.
func (t *SchemaType) Description(desc string) error { return t.field("description", Text(desc)) }

// Fields starts writing pdfaType:field, the sequence of field
// descriptions. Close it before writing further type fields.
func (t *SchemaType) Fields() (*SchemaFields, error) {
	fld, err := t.stc.Field(PDFAType, "field")
	if err != nil {
		return nil, err
	}
	arr, err := fld.BeginArray(Ordered)
	if err != nil {
		return nil, err
	}
	return &SchemaFields{arr: arr, field: fld}, nil
}

// Close ends the value type struct and unlocks the type sequence.
func (t *SchemaType) Close() error {
	if err := t.stc.Close(); err != nil {
		return err
	}
	return t.item.Close()
}

// SchemaTypes writes the pdfaSchema:valueType sequence of an extension
// schema. Created by Schema.ValueTypes.
type SchemaTypes struct {
	arr   *ArrayElement
	field *Element
}

// AddType appends a value type description. The returned type must be
// closed before the next AddType.
func (ts *SchemaTypes) AddType() (*SchemaType, error) {
	item, err := ts.arr.Item()
	if err != nil {
		return nil, err
	}
	stc, err := item.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &SchemaType{stc: stc, item: item}, nil
}

// Close ends the type sequence and unlocks the schema.
func (ts *SchemaTypes) Close() error {
	if err := ts.arr.Close(); err != nil {
		return err
	}
	return ts.field.Close()
}

// SchemaProperty writes the fields of a pdfaProperty struct describing
// one extension property. Created by SchemaProperties.AddProperty.
type SchemaProperty struct {
	stc  *StructElement
	item *Element
}

func (p *SchemaProperty) field(name string, value Text) error {
	fld, err := p.stc.Field(PDFAProperty, name)
	if err != nil {
		return err
	}
	if err := fld.Scalar(value); err != nil {
		return err
	}
	return fld.Close()
}

// Name writes pdfaProperty:name.
func (p *SchemaProperty) Name(name string) error { return p.field("name", Text(name)) }

// ValueType writes pdfaProperty:valueType.
func (p *SchemaProperty) ValueType(t string) error { return p.field("valueType", Text(t)) }

// Category writes pdfaProperty:category.
func (p *SchemaProperty) Category(c PropertyCategory) error {
	return p.field("category", Text(string(c)))
}

// Description writes pdfaProperty:description.
func (p *SchemaProperty) Description(desc string) error { return p.field("description", Text(desc)) }

// Close ends the property struct and unlocks the property sequence.
func (p *SchemaProperty) Close() error {
	if err := p.stc.Close(); err != nil {
		return err
	}
	return p.item.Close()
}

// SchemaProperties writes the pdfaSchema:property sequence of an
// extension schema. Created by Schema.Properties.
type SchemaProperties struct {
	arr   *ArrayElement
	field *Element
}

// AddProperty appends a property description. The returned property
// must be closed before the next AddProperty.
func (ps *SchemaProperties) AddProperty() (*SchemaProperty, error) {
	item, err := ps.arr.Item()
	if err != nil {
		return nil, err
	}
	stc, err := item.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &SchemaProperty{stc: stc, item: item}, nil
}

// Close ends the property sequence and unlocks the schema.
func (ps *SchemaProperties) Close() error {
	if err := ps.arr.Close(); err != nil {
		return err
	}
	return ps.field.Close()
}

// Schema writes the fields of a pdfaSchema struct describing one
// extension schema. Created by ExtensionSchemas.AddSchema.
type Schema struct {
	stc  *StructElement
	item *Element
}

func (s *Schema) field(name string, value Text) error {
	fld, err := s.stc.Field(PDFASchema, name)
	if err != nil {
		return err
	}
	if err := fld.Scalar(value); err != nil {
		return err
	}
	return fld.Close()
}

// Description writes pdfaSchema:schema, a description of the schema.
func (s *Schema) Description(desc string) error { return s.field("schema", Text(desc)) }

// NamespaceURI writes pdfaSchema:namespaceURI.
func (s *Schema) NamespaceURI(uri string) error { return s.field("namespaceURI", Text(uri)) }

// Prefix writes pdfaSchema:prefix.
func (s *Schema) Prefix(prefix string) error { return s.field("prefix", Text(prefix)) }

// Properties starts writing pdfaSchema:property, the sequence of
// property descriptions. Close it before writing further schema fields.
func (s *Schema) Properties() (*SchemaProperties, error) {
	fld, err := s.stc.Field(PDFASchema, "property")
	if err != nil {
		return nil, err
	}
	arr, err := fld.BeginArray(Ordered)
	if err != nil {
		return nil, err
	}
	return &SchemaProperties{arr: arr, field: fld}, nil
}

// ValueTypes starts writing pdfaSchema:valueType, the sequence of value
// type descriptions. Close it before writing further schema fields.
func (s *Schema) ValueTypes() (*SchemaTypes, error) {
	fld, err := s.stc.Field(PDFASchema, "valueType")
	if err != nil {
		return nil, err
	}
	arr, err := fld.BeginArray(Ordered)
	if err != nil {
		return nil, err
	}
	return &SchemaTypes{arr: arr, field: fld}, nil
}

// Close ends the schema struct and unlocks the schema bag.
func (s *Schema) Close() error {
	if err := s.stc.Close(); err != nil {
		return err
	}
	return s.item.Close()
}

// ExtensionSchemas writes the pdfaExtension:schemas bag of extension
// schema descriptions. Created by the ExtensionSchemas method; close it
// before using the packet writer again.
type ExtensionSchemas struct {
	arr  *ArrayElement
	prop *Element
}

// AddSchema appends a schema description. The returned schema must be
// closed before the next AddSchema.
func (es *ExtensionSchemas) AddSchema() (*Schema, error) {
	item, err := es.arr.Item()
	if err != nil {
		return nil, err
	}
	stc, err := item.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &Schema{stc: stc, item: item}, nil
}

// Close ends the schema bag and unlocks the packet writer.
func (es *ExtensionSchemas) Close() error {
	if err := es.arr.Close(); err != nil {
		return err
	}
	return es.prop.Close()
}

// ExtensionSchemas starts writing pdfaExtension:schemas.
func (w *PacketWriter) ExtensionSchemas() (*ExtensionSchemas, error) {
	prop, err := w.Property(PDFAExtension, "schemas")
	if err != nil {
		return nil, err
	}
	arr, err := prop.BeginArray(Unordered)
	if err != nil {
		return nil, err
	}
	return &ExtensionSchemas{arr: arr, prop: prop}, nil
}
