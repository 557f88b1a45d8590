package xmp

import "strconv"

// Namespace binds a preferred prefix to a namespace URI. The URI is the
// namespace's identity; the prefix is a serialization convenience and may
// be replaced by the writer when it collides with an earlier registration.
type Namespace struct {
	// Prefix is the preferred short alias used in element tag names.
	Prefix string
	// URI is the namespace URI.
	URI string
}

// Well-known XMP namespaces.
var (
	// RDF is the RDF syntax namespace.
	RDF = Namespace{Prefix: "rdf", URI: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"}
	// DublinCore is the Dublin Core element set.
	DublinCore = Namespace{Prefix: "dc", URI: "http://purl.org/dc/elements/1.1/"}
	// XMPBasic is the XMP basic schema.
	XMPBasic = Namespace{Prefix: "xmp", URI: "http://ns.adobe.com/xap/1.0/"}
	// XMPRights is the XMP rights management schema.
	XMPRights = Namespace{Prefix: "xmpRights", URI: "http://ns.adobe.com/xap/1.0/rights/"}
	// XMPMedia is the XMP media management schema.
	XMPMedia = Namespace{Prefix: "xmpMM", URI: "http://ns.adobe.com/xap/1.0/mm/"}
	// XMPJobManagement is the XMP basic job ticket schema.
	XMPJobManagement = Namespace{Prefix: "xmpBJ", URI: "http://ns.adobe.com/xap/1.0/bj/"}
	// XMPPaged is the XMP paged-text schema.
	XMPPaged = Namespace{Prefix: "xmpTPg", URI: "http://ns.adobe.com/xap/1.0/t/pg/"}
	// XMPDynamicMedia is the XMP dynamic media schema.
	XMPDynamicMedia = Namespace{Prefix: "xmpDM", URI: "http://ns.adobe.com/xap/1.0/DynamicMedia/"}
	// XMPIdq qualifies entries of the xmp:Identifier property.
	XMPIdq = Namespace{Prefix: "xmpidq", URI: "http://ns.adobe.com/xmp/Identifier/qual/1.0/"}
	// XMPImage is the thumbnail image type namespace.
	XMPImage = Namespace{Prefix: "xmpGImg", URI: "http://ns.adobe.com/xap/1.0/g/img/"}
	// XMPColorant is the colorant type namespace.
	XMPColorant = Namespace{Prefix: "xmpG", URI: "http://ns.adobe.com/xap/1.0/g/"}
	// XMPFont is the font type namespace.
	XMPFont = Namespace{Prefix: "stFnt", URI: "http://ns.adobe.com/xap/1.0/sType/Font#"}
	// XMPDimensions is the dimensions type namespace.
	XMPDimensions = Namespace{Prefix: "stDim", URI: "http://ns.adobe.com/xap/1.0/sType/Dimensions#"}
	// XMPResourceRef is the resource reference type namespace.
	XMPResourceRef = Namespace{Prefix: "stRef", URI: "http://ns.adobe.com/xap/1.0/sType/ResourceRef#"}
	// XMPResourceEvent is the resource event type namespace.
	XMPResourceEvent = Namespace{Prefix: "stEvt", URI: "http://ns.adobe.com/xap/1.0/sType/ResourceEvent#"}
	// XMPVersion is the version type namespace.
	XMPVersion = Namespace{Prefix: "stVer", URI: "http://ns.adobe.com/xap/1.0/sType/Version#"}
	// XMPJob is the job type namespace.
	XMPJob = Namespace{Prefix: "stJob", URI: "http://ns.adobe.com/xap/1.0/sType/Job#"}
	// AdobePDF is the Adobe PDF schema.
	AdobePDF = Namespace{Prefix: "pdf", URI: "http://ns.adobe.com/pdf/1.3/"}
	// PDFAID is the PDF/A identification schema.
	PDFAID = Namespace{Prefix: "pdfaid", URI: "http://www.aiim.org/pdfa/ns/id/"}
	// PDFXID is the PDF/X identification schema.
	PDFXID = Namespace{Prefix: "pdfxid", URI: "http://www.npes.org/pdfx/ns/id/"}
	// PDFAExtension is the PDF/A extension schema container namespace.
	PDFAExtension = Namespace{Prefix: "pdfaExtension", URI: "http://www.aiim.org/pdfa/ns/extension/"}
	// PDFASchema is the PDF/A extension schema description namespace.
	PDFASchema = Namespace{Prefix: "pdfaSchema", URI: "http://www.aiim.org/pdfa/ns/schema#"}
	// PDFAProperty is the PDF/A extension property description namespace.
	PDFAProperty = Namespace{Prefix: "pdfaProperty", URI: "http://www.aiim.org/pdfa/ns/property#"}
	// PDFAType is the PDF/A extension value type description namespace.
	PDFAType = Namespace{Prefix: "pdfaType", URI: "http://www.aiim.org/pdfa/ns/type#"}
	// PDFAField is the PDF/A extension field description namespace.
	PDFAField = Namespace{Prefix: "pdfaField", URI: "http://www.aiim.org/pdfa/ns/field#"}
)

// registry tracks prefix bindings for one packet. The URI is the identity:
// resolving the same URI twice yields the same prefix. When a requested
// prefix is already bound to a different URI, a fresh prefix is minted
// deterministically by suffixing an increasing integer (p, p2, p3, ...).
// A requested prefix that is not a valid XML name is replaced by "ns"
// before minting, so no caller input can produce an illegal tag.
type registry struct {
	byURI    map[string]string // uri -> prefix in use
	byPrefix map[string]string // prefix -> uri
	declared []Namespace       // in registration order
}

func newRegistry() *registry {
	r := &registry{
		byURI:    map[string]string{},
		byPrefix: map[string]string{},
	}
	// rdf is declared on the rdf:RDF root, not on the description, but its
	// prefix is reserved so custom namespaces can never shadow it.
	r.byURI[RDF.URI] = RDF.Prefix
	r.byPrefix[RDF.Prefix] = RDF.URI
	return r
}

// resolve returns the prefix in use for ns, registering it on first use.
// Every call succeeds; minting guarantees eventual availability.
func (r *registry) resolve(ns Namespace) string {
	if prefix, ok := r.byURI[ns.URI]; ok {
		return prefix
	}
	candidate := ns.Prefix
	if !isXMLName(candidate) {
		candidate = "ns"
	}
	prefix := candidate
	for n := 2; ; n++ {
		if _, taken := r.byPrefix[prefix]; !taken {
			break
		}
		prefix = candidate + strconv.Itoa(n)
	}
	r.byURI[ns.URI] = prefix
	r.byPrefix[prefix] = ns.URI
	r.declared = append(r.declared, Namespace{Prefix: prefix, URI: ns.URI})
	return prefix
}

// bindings returns the declared namespaces in registration order,
// excluding rdf which the packet envelope declares itself.
func (r *registry) bindings() []Namespace {
	return r.declared
}
