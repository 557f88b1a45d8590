package xmp

import (
	"strings"
	"testing"
)

func TestIngredients(t *testing.T) {
	w := New(WithPadding(0))
	ingredients, err := w.Ingredients()
	if err != nil {
		t.Fatalf("ingredients: %v", err)
	}
	ref, err := ingredients.AddRef()
	if err != nil {
		t.Fatalf("add ref: %v", err)
	}
	ref.FilePath("chart.svg")
	ref.DocumentID("xmp.did:chart")
	if err := ref.Close(); err != nil {
		t.Fatalf("close ref: %v", err)
	}
	ref2, err := ingredients.AddRef()
	if err != nil {
		t.Fatalf("second ref: %v", err)
	}
	ref2.FilePath("logo.png")
	if err := ref2.Close(); err != nil {
		t.Fatalf("close second ref: %v", err)
	}
	if err := ingredients.Close(); err != nil {
		t.Fatalf("close ingredients: %v", err)
	}
	s := finishString(t, w)
	want := `<xmpMM:Ingredients><rdf:Bag>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<stRef:filePath>chart.svg</stRef:filePath>` +
		`<stRef:documentID>xmp.did:chart</stRef:documentID>` +
		`</rdf:li>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<stRef:filePath>logo.png</stRef:filePath>` +
		`</rdf:li>` +
		`</rdf:Bag></xmpMM:Ingredients>`
	if !strings.Contains(s, want) {
		t.Fatalf("packet %q missing %q", s, want)
	}
}

func TestVersions(t *testing.T) {
	w := New(WithPadding(0))
	versions, err := w.Versions()
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	version, err := versions.AddVersion()
	if err != nil {
		t.Fatalf("add version: %v", err)
	}
	version.Comments("first draft")
	event, err := version.Event()
	if err != nil {
		t.Fatalf("event: %v", err)
	}
	event.Action(ActionSaved)
	if err := event.Close(); err != nil {
		t.Fatalf("close event: %v", err)
	}
	version.Modifier("Jane Doe")
	version.ModifyDate(CalendarDate(2024, 3, 1))
	version.VersionID("1")
	if err := version.Close(); err != nil {
		t.Fatalf("close version: %v", err)
	}
	if err := versions.Close(); err != nil {
		t.Fatalf("close versions: %v", err)
	}
	s := finishString(t, w)
	want := `<xmpMM:Versions><rdf:Seq>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<stVer:comments>first draft</stVer:comments>` +
		`<stVer:event rdf:parseType="Resource">` +
		`<stEvt:action>saved</stEvt:action>` +
		`</stVer:event>` +
		`<stVer:modifier>Jane Doe</stVer:modifier>` +
		`<stVer:modifyDate>2024-03-01</stVer:modifyDate>` +
		`<stVer:version>1</stVer:version>` +
		`</rdf:li>` +
		`</rdf:Seq></xmpMM:Versions>`
	if !strings.Contains(s, want) {
		t.Fatalf("packet %q missing %q", s, want)
	}
}

func TestVersionBlockedWhileEventOpen(t *testing.T) {
	w := New()
	versions, err := w.Versions()
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	version, err := versions.AddVersion()
	if err != nil {
		t.Fatalf("add version: %v", err)
	}
	event, err := version.Event()
	if err != nil {
		t.Fatalf("event: %v", err)
	}
	if err := version.Comments("x"); err == nil {
		t.Fatal("version accepted field while event open")
	}
	if err := event.Close(); err != nil {
		t.Fatalf("close event: %v", err)
	}
	if err := version.Comments("x"); err != nil {
		t.Fatalf("version still locked after event closed: %v", err)
	}
}
