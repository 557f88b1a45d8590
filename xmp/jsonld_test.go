package xmp

import "testing"

func TestJSONLDScalarsAndContext(t *testing.T) {
	w := New(WithAbout("https://example.com/doc"))
	w.Format("application/pdf")
	w.Coverage("worldwide")
	doc, err := w.JSONLD()
	if err != nil {
		t.Fatalf("jsonld: %v", err)
	}
	if got := doc["@id"]; got != "https://example.com/doc" {
		t.Errorf("@id = %v", got)
	}
	if got := doc["dc:format"]; got != "application/pdf" {
		t.Errorf("dc:format = %v", got)
	}
	if got := doc["dc:coverage"]; got != "worldwide" {
		t.Errorf("dc:coverage = %v", got)
	}
	ctx, ok := doc["@context"].(map[string]interface{})
	if !ok {
		t.Fatalf("@context is %T", doc["@context"])
	}
	if got := ctx["dc"]; got != DublinCore.URI {
		t.Errorf("context dc = %v", got)
	}
}

func TestJSONLDOrderedArray(t *testing.T) {
	w := New()
	w.Creator("First Author", "Second Author")
	doc, err := w.JSONLD()
	if err != nil {
		t.Fatalf("jsonld: %v", err)
	}
	list, ok := doc["dc:creator"].(map[string]interface{})
	if !ok {
		t.Fatalf("dc:creator is %T, want @list object", doc["dc:creator"])
	}
	items, ok := list["@list"].([]interface{})
	if !ok {
		t.Fatalf("@list is %T", list["@list"])
	}
	if len(items) != 2 || items[0] != "First Author" || items[1] != "Second Author" {
		t.Fatalf("@list = %v", items)
	}
}

func TestJSONLDLangAlt(t *testing.T) {
	w := New()
	w.Title(LangAlt{{Lang: "de", Value: "Titel"}, {Lang: "en", Value: "Title"}})
	doc, err := w.JSONLD()
	if err != nil {
		t.Fatalf("jsonld: %v", err)
	}
	entries, ok := doc["dc:title"].([]interface{})
	if !ok {
		t.Fatalf("dc:title is %T", doc["dc:title"])
	}
	if len(entries) != 2 {
		t.Fatalf("dc:title has %d entries", len(entries))
	}
	first, ok := entries[0].(map[string]interface{})
	if !ok {
		t.Fatalf("entry is %T", entries[0])
	}
	if first["@value"] != "Titel" || first["@language"] != "de" {
		t.Fatalf("entry = %v", first)
	}
}

func TestJSONLDStructInheritsNamespace(t *testing.T) {
	w := New()
	if err := w.MaxPageSize(210, 297, UnitMM); err != nil {
		t.Fatalf("max page size: %v", err)
	}
	doc, err := w.JSONLD()
	if err != nil {
		t.Fatalf("jsonld: %v", err)
	}
	size, ok := doc["xmpTPg:MaxPageSize"].(map[string]interface{})
	if !ok {
		t.Fatalf("xmpTPg:MaxPageSize is %T", doc["xmpTPg:MaxPageSize"])
	}
	if got := size["stDim:unit"]; got != "mm" {
		t.Errorf("stDim:unit = %v", got)
	}
	ctx := doc["@context"].(map[string]interface{})
	if got := ctx["stDim"]; got != XMPDimensions.URI {
		t.Errorf("context stDim = %v", got)
	}
}

func TestJSONLDLeavesWriterUsable(t *testing.T) {
	w := New(WithPadding(0))
	w.Coverage("worldwide")
	if _, err := w.JSONLD(); err != nil {
		t.Fatalf("jsonld: %v", err)
	}
	if err := w.Format("application/pdf"); err != nil {
		t.Fatalf("property after JSONLD: %v", err)
	}
	if _, err := w.Finish(); err != nil {
		t.Fatalf("finish after JSONLD: %v", err)
	}
}
