package xmp

// Named convenience properties. Each is a thin mapping from a well-known
// XMP field onto the generic value primitives.

// Contributor writes dc:contributor, the entities that contributed to the
// resource beyond those in Creator.
func (w *PacketWriter) Contributor(contributors ...string) error {
	return w.SetProperty(DublinCore, "contributor", TextArray(Unordered, contributors...))
}

// Coverage writes dc:coverage, the scope of the resource.
func (w *PacketWriter) Coverage(coverage string) error {
	return w.SetProperty(DublinCore, "coverage", Text(coverage))
}

// Creator writes dc:creator, the entities primarily responsible for the
// resource, in order of precedence.
func (w *PacketWriter) Creator(creators ...string) error {
	return w.SetProperty(DublinCore, "creator", TextArray(Ordered, creators...))
}

// Date writes dc:date, dates on which something happened to the resource.
func (w *PacketWriter) Date(dates ...Date) error {
	items := make([]Value, len(dates))
	for i, d := range dates {
		items[i] = d.Text()
	}
	return w.SetProperty(DublinCore, "date", Array{Type: Ordered, Items: items})
}

// Description writes dc:description, an account of the resource, possibly
// in multiple languages.
func (w *PacketWriter) Description(description LangAlt) error {
	return w.SetProperty(DublinCore, "description", description)
}

// Format writes dc:format, the resource's MIME type.
func (w *PacketWriter) Format(mime string) error {
	return w.SetProperty(DublinCore, "format", Text(mime))
}

// Identifier writes dc:identifier, an unambiguous reference to the
// resource within a given context.
func (w *PacketWriter) Identifier(id string) error {
	return w.SetProperty(DublinCore, "identifier", Text(id))
}

// Language writes dc:language, the languages used in the resource.
func (w *PacketWriter) Language(languages ...string) error {
	return w.SetProperty(DublinCore, "language", TextArray(Unordered, languages...))
}

// Publisher writes dc:publisher.
func (w *PacketWriter) Publisher(publishers ...string) error {
	return w.SetProperty(DublinCore, "publisher", TextArray(Unordered, publishers...))
}

// Relation writes dc:relation, related resources.
func (w *PacketWriter) Relation(relations ...string) error {
	return w.SetProperty(DublinCore, "relation", TextArray(Unordered, relations...))
}

// Rights writes dc:rights, informal rights statements, possibly in
// multiple languages.
func (w *PacketWriter) Rights(rights LangAlt) error {
	return w.SetProperty(DublinCore, "rights", rights)
}

// Source writes dc:source, the resource this one is derived from.
func (w *PacketWriter) Source(source string) error {
	return w.SetProperty(DublinCore, "source", Text(source))
}

// Subject writes dc:subject, keywords describing the topic of the
// resource.
func (w *PacketWriter) Subject(subjects ...string) error {
	return w.SetProperty(DublinCore, "subject", TextArray(Unordered, subjects...))
}

// Title writes dc:title, a name given to the resource, possibly in
// multiple languages.
func (w *PacketWriter) Title(title LangAlt) error {
	return w.SetProperty(DublinCore, "title", title)
}

// Type writes dc:type, the nature or genre of the resource. Use Format
// for the MIME type.
func (w *PacketWriter) Type(kinds ...string) error {
	return w.SetProperty(DublinCore, "type", TextArray(Unordered, kinds...))
}

// BaseURL writes xmp:BaseURL, the base for relative URLs in the document.
func (w *PacketWriter) BaseURL(url string) error {
	return w.SetProperty(XMPBasic, "BaseURL", Text(url))
}

// CreateDate writes xmp:CreateDate.
func (w *PacketWriter) CreateDate(date Date) error {
	return w.SetProperty(XMPBasic, "CreateDate", date.Text())
}

// CreatorTool writes xmp:CreatorTool, the application that created the
// resource.
func (w *PacketWriter) CreatorTool(tool string) error {
	return w.SetProperty(XMPBasic, "CreatorTool", Text(tool))
}

// XMPIdentifier writes xmp:Identifier, text strings that identify the
// resource. IdentifierScheme specifies their scheme.
func (w *PacketWriter) XMPIdentifier(ids ...string) error {
	return w.SetProperty(XMPBasic, "Identifier", TextArray(Unordered, ids...))
}

// IdentifierScheme writes xmpidq:Scheme, qualifying XMPIdentifier.
func (w *PacketWriter) IdentifierScheme(scheme string) error {
	return w.SetProperty(XMPIdq, "Scheme", Text(scheme))
}

// Label writes xmp:Label, a user-defined label for the resource.
func (w *PacketWriter) Label(label string) error {
	return w.SetProperty(XMPBasic, "Label", Text(label))
}

// MetadataDate writes xmp:MetadataDate, when the metadata last changed.
func (w *PacketWriter) MetadataDate(date Date) error {
	return w.SetProperty(XMPBasic, "MetadataDate", date.Text())
}

// ModifyDate writes xmp:ModifyDate, when the resource last changed.
func (w *PacketWriter) ModifyDate(date Date) error {
	return w.SetProperty(XMPBasic, "ModifyDate", date.Text())
}

// Nickname writes xmp:Nickname, a short informal name for the resource.
func (w *PacketWriter) Nickname(nickname string) error {
	return w.SetProperty(XMPBasic, "Nickname", Text(nickname))
}

// Rating writes xmp:Rating. -1 means rejected, 0 unrated, 1-5 stars.
func (w *PacketWriter) Rating(rating int) error {
	return w.SetProperty(XMPBasic, "Rating", Int(int64(rating)))
}

// Certificate writes xmpRights:Certificate, a URL to a rights management
// certificate.
func (w *PacketWriter) Certificate(url string) error {
	return w.SetProperty(XMPRights, "Certificate", Text(url))
}

// Marked writes xmpRights:Marked. False marks a public-domain resource.
func (w *PacketWriter) Marked(marked bool) error {
	return w.SetProperty(XMPRights, "Marked", Bool(marked))
}

// Owner writes xmpRights:Owner, the people or organizations owning the
// resource.
func (w *PacketWriter) Owner(owners ...string) error {
	return w.SetProperty(XMPRights, "Owner", TextArray(Unordered, owners...))
}

// UsageTerms writes xmpRights:UsageTerms, the conditions under which the
// resource may be used.
func (w *PacketWriter) UsageTerms(terms LangAlt) error {
	return w.SetProperty(XMPRights, "UsageTerms", terms)
}

// WebStatement writes xmpRights:WebStatement, a URL to a rights
// management statement.
func (w *PacketWriter) WebStatement(url string) error {
	return w.SetProperty(XMPRights, "WebStatement", Text(url))
}

// PDFKeywords writes pdf:Keywords.
func (w *PacketWriter) PDFKeywords(keywords string) error {
	return w.SetProperty(AdobePDF, "Keywords", Text(keywords))
}

// PDFVersion writes pdf:PDFVersion, e.g. "1.7".
func (w *PacketWriter) PDFVersion(version string) error {
	return w.SetProperty(AdobePDF, "PDFVersion", Text(version))
}

// Producer writes pdf:Producer, the application that produced the PDF.
func (w *PacketWriter) Producer(producer string) error {
	return w.SetProperty(AdobePDF, "Producer", Text(producer))
}

// Trapped writes pdf:Trapped.
func (w *PacketWriter) Trapped(trapped bool) error {
	return w.SetProperty(AdobePDF, "Trapped", Bool(trapped))
}

// PDFAPart writes pdfaid:part, e.g. "2".
func (w *PacketWriter) PDFAPart(part string) error {
	return w.SetProperty(PDFAID, "part", Text(part))
}

// PDFAConformance writes pdfaid:conformance, e.g. "B".
func (w *PacketWriter) PDFAConformance(conformance string) error {
	return w.SetProperty(PDFAID, "conformance", Text(conformance))
}

// PDFXVersion writes pdfxid:GTS_PDFXVersion, e.g. "PDF/X-3:2003".
func (w *PacketWriter) PDFXVersion(version string) error {
	return w.SetProperty(PDFXID, "GTS_PDFXVersion", Text(version))
}

// NumPages writes xmpTPg:NPages.
func (w *PacketWriter) NumPages(n int) error {
	return w.SetProperty(XMPPaged, "NPages", Int(int64(n)))
}

// PlateNames writes xmpTPg:PlateNames, the plates needed to print the
// document.
func (w *PacketWriter) PlateNames(names ...string) error {
	return w.SetProperty(XMPPaged, "PlateNames", TextArray(Ordered, names...))
}

// DimensionUnit is the unit of a dimensions struct.
type DimensionUnit string

// Dimension units.
const (
	UnitInch  DimensionUnit = "inch"
	UnitMM    DimensionUnit = "mm"
	UnitPixel DimensionUnit = "pixel"
	UnitPica  DimensionUnit = "pica"
	UnitPoint DimensionUnit = "point"
)

// MaxPageSize writes xmpTPg:MaxPageSize, the largest page size in the
// document, as an stDim dimensions struct.
func (w *PacketWriter) MaxPageSize(width, height float64, unit DimensionUnit) error {
	return w.SetProperty(XMPPaged, "MaxPageSize", Struct{
		{NS: XMPDimensions, Name: "w", Value: Float(width)},
		{NS: XMPDimensions, Name: "h", Value: Float(height)},
		{NS: XMPDimensions, Name: "unit", Value: Text(string(unit))},
	})
}
