package xmp

import (
	"strings"
	"testing"
)

func finishString(t *testing.T, w *PacketWriter) string {
	t.Helper()
	packet, err := w.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	return string(packet)
}

func TestDublinCoreProperties(t *testing.T) {
	w := New(WithPadding(0))
	if err := w.Creator("Martin Haug"); err != nil {
		t.Fatalf("creator: %v", err)
	}
	if err := w.Subject("go", "xmp"); err != nil {
		t.Fatalf("subject: %v", err)
	}
	if err := w.Format("application/pdf"); err != nil {
		t.Fatalf("format: %v", err)
	}
	if err := w.Date(CalendarDate(2021, 11, 6)); err != nil {
		t.Fatalf("date: %v", err)
	}
	s := finishString(t, w)
	for _, want := range []string{
		"<dc:creator><rdf:Seq><rdf:li>Martin Haug</rdf:li></rdf:Seq></dc:creator>",
		"<dc:subject><rdf:Bag><rdf:li>go</rdf:li><rdf:li>xmp</rdf:li></rdf:Bag></dc:subject>",
		"<dc:format>application/pdf</dc:format>",
		"<dc:date><rdf:Seq><rdf:li>2021-11-06</rdf:li></rdf:Seq></dc:date>",
		`xmlns:dc="http://purl.org/dc/elements/1.1/"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("packet missing %q", want)
		}
	}
}

func TestBasicAndRightsProperties(t *testing.T) {
	w := New(WithPadding(0))
	w.CreatorTool("xmp-go test")
	w.Rating(3)
	w.Marked(true)
	w.Trapped(false)
	s := finishString(t, w)
	for _, want := range []string{
		"<xmp:CreatorTool>xmp-go test</xmp:CreatorTool>",
		"<xmp:Rating>3</xmp:Rating>",
		"<xmpRights:Marked>True</xmpRights:Marked>",
		"<pdf:Trapped>False</pdf:Trapped>",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("packet missing %q", want)
		}
	}
}

func TestMaxPageSize(t *testing.T) {
	w := New(WithPadding(0))
	if err := w.MaxPageSize(210, 297.5, UnitMM); err != nil {
		t.Fatalf("max page size: %v", err)
	}
	s := finishString(t, w)
	want := `<xmpTPg:MaxPageSize rdf:parseType="Resource">` +
		`<stDim:w>210</stDim:w><stDim:h>297.5</stDim:h><stDim:unit>mm</stDim:unit>` +
		`</xmpTPg:MaxPageSize>`
	if !strings.Contains(s, want) {
		t.Fatalf("packet %q missing %q", s, want)
	}
}

func TestDerivedFrom(t *testing.T) {
	w := New(WithPadding(0))
	ref, err := w.DerivedFrom()
	if err != nil {
		t.Fatalf("derived from: %v", err)
	}
	if err := ref.FilePath("original.pdf"); err != nil {
		t.Fatalf("file path: %v", err)
	}
	if err := ref.DocumentID("xmp.did:123"); err != nil {
		t.Fatalf("document id: %v", err)
	}
	if err := ref.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	s := finishString(t, w)
	want := `<xmpMM:DerivedFrom rdf:parseType="Resource">` +
		`<stRef:filePath>original.pdf</stRef:filePath>` +
		`<stRef:documentID>xmp.did:123</stRef:documentID>` +
		`</xmpMM:DerivedFrom>`
	if !strings.Contains(s, want) {
		t.Fatalf("packet %q missing %q", s, want)
	}
}

func TestHistory(t *testing.T) {
	w := New(WithPadding(0))
	history, err := w.History()
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	event, err := history.AddEvent()
	if err != nil {
		t.Fatalf("add event: %v", err)
	}
	event.Action(ActionCreated)
	event.SoftwareAgent("xmp-go")
	event.When(CalendarDate(2021, 11, 6))
	if err := event.Close(); err != nil {
		t.Fatalf("close event: %v", err)
	}
	event2, err := history.AddEvent()
	if err != nil {
		t.Fatalf("second event: %v", err)
	}
	event2.Action(ActionSaved)
	if err := event2.Close(); err != nil {
		t.Fatalf("close second event: %v", err)
	}
	if err := history.Close(); err != nil {
		t.Fatalf("close history: %v", err)
	}
	s := finishString(t, w)
	want := `<xmpMM:History><rdf:Seq>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<stEvt:action>created</stEvt:action>` +
		`<stEvt:softwareAgent>xmp-go</stEvt:softwareAgent>` +
		`<stEvt:when>2021-11-06</stEvt:when>` +
		`</rdf:li>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<stEvt:action>saved</stEvt:action>` +
		`</rdf:li>` +
		`</rdf:Seq></xmpMM:History>`
	if !strings.Contains(s, want) {
		t.Fatalf("packet %q missing %q", s, want)
	}
}

func TestDynamicMediaProperties(t *testing.T) {
	w := New(WithPadding(0))
	if err := w.SetProperty(XMPDynamicMedia, "shotName", Text("intro")); err != nil {
		t.Fatalf("set property: %v", err)
	}
	s := finishString(t, w)
	if !strings.Contains(s, "<xmpDM:shotName>intro</xmpDM:shotName>") {
		t.Fatalf("packet %q missing shot name", s)
	}
	if !strings.Contains(s, `xmlns:xmpDM="http://ns.adobe.com/xap/1.0/DynamicMedia/"`) {
		t.Fatalf("packet %q missing xmpDM declaration", s)
	}
}

func TestHistoryBlocksWriterUntilClosed(t *testing.T) {
	w := New()
	history, err := w.History()
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if err := w.Coverage("x"); err == nil {
		t.Fatal("writer accepted property while history open")
	}
	if err := history.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Coverage("x"); err != nil {
		t.Fatalf("writer still locked after close: %v", err)
	}
}
