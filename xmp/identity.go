package xmp

import "github.com/google/uuid"

// Document and instance identifiers in the form Adobe tools emit:
// a URI-shaped "xmp.did:"/"xmp.iid:" scheme followed by a UUID.

// identityNamespace is the UUIDv5 namespace for derived document IDs.
var identityNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("ns.adobe.com/xap/1.0/mm/"))

// NewDocumentID returns a fresh random document identifier, suitable for
// xmpMM:DocumentID.
func NewDocumentID() string {
	return "xmp.did:" + uuid.NewString()
}

// NewInstanceID returns a fresh random instance identifier, suitable for
// xmpMM:InstanceID.
func NewInstanceID() string {
	return "xmp.iid:" + uuid.NewString()
}

// DeriveDocumentID returns a deterministic document identifier for a
// source path or URL: the same input always yields the same ID.
func DeriveDocumentID(source string) string {
	return "xmp.did:" + uuid.NewSHA1(identityNamespace, []byte(source)).String()
}
