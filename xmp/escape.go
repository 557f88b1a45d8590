package xmp

import "strings"

var (
	textReplacer = strings.NewReplacer(
		`&`, "&amp;",
		`<`, "&lt;",
		`>`, "&gt;",
	)
	attrReplacer = strings.NewReplacer(
		`&`, "&amp;",
		`<`, "&lt;",
		`>`, "&gt;",
		`"`, "&quot;",
		`'`, "&apos;",
	)
)

// escapeXML escapes element text content.
func escapeXML(value string) string {
	return textReplacer.Replace(value)
}

// escapeXMLAttr escapes attribute values, including both quote characters.
func escapeXMLAttr(value string) string {
	return attrReplacer.Replace(value)
}

// isXMLName reports whether value is usable as an XML element name.
// Restricted to the ASCII subset of the XML Name production; XMP property
// and field names are ASCII in practice.
func isXMLName(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if i == 0 {
			if !isNameStartChar(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}
	return true
}

func isNameStartChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
}
