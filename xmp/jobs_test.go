package xmp

import (
	"strings"
	"testing"
)

func TestJobs(t *testing.T) {
	w := New(WithPadding(0))
	jobs, err := w.Jobs()
	if err != nil {
		t.Fatalf("jobs: %v", err)
	}
	job, err := jobs.AddJob()
	if err != nil {
		t.Fatalf("add job: %v", err)
	}
	job.ID("42")
	job.Name("proof print")
	job.URL("https://workflow.example.com/jobs/42")
	if err := job.Close(); err != nil {
		t.Fatalf("close job: %v", err)
	}
	if err := jobs.Close(); err != nil {
		t.Fatalf("close jobs: %v", err)
	}
	s := finishString(t, w)
	want := `<xmpBJ:JobRef><rdf:Bag>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<stJob:id>42</stJob:id>` +
		`<stJob:name>proof print</stJob:name>` +
		`<stJob:url>https://workflow.example.com/jobs/42</stJob:url>` +
		`</rdf:li>` +
		`</rdf:Bag></xmpBJ:JobRef>`
	if !strings.Contains(s, want) {
		t.Fatalf("packet %q missing %q", s, want)
	}
	if !strings.Contains(s, `xmlns:xmpBJ="http://ns.adobe.com/xap/1.0/bj/"`) {
		t.Error("xmpBJ namespace not declared")
	}
}
