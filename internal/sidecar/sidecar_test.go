package sidecar

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/xmp-go/xmp"
)

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AllFields(t *testing.T) {
	path := writeJob(t, `about: https://example.com/report
toolkit: "mytool 1.0"
padding: 512

title:
  - lang: de
    value: Bericht
  - value: Report
creators:
  - Jane Doe
  - John Doe
subjects:
  - quarterly
format: application/pdf
creator_tool: reportgen
create_date: "2024-03-01"
rating: 4
history:
  - action: created
    when: "2024-03-01"
    software_agent: reportgen
`)

	job, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.Equal(t, "https://example.com/report", job.About)
	assert.Equal(t, "mytool 1.0", job.Toolkit)
	require.NotNil(t, job.Padding)
	assert.Equal(t, 512, *job.Padding)
	require.Len(t, job.Title, 2)
	assert.Equal(t, "de", job.Title[0].Lang)
	assert.Equal(t, "Bericht", job.Title[0].Value)
	assert.Equal(t, "", job.Title[1].Lang)
	assert.Equal(t, []string{"Jane Doe", "John Doe"}, job.Creators)
	require.NotNil(t, job.Rating)
	assert.Equal(t, 4, *job.Rating)
	require.Len(t, job.History, 1)
	assert.Equal(t, "created", job.History[0].Action)
}

func TestLoad_FileNotFound(t *testing.T) {
	job, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, ErrJobNotFound), "expected ErrJobNotFound, got: %v", err)
	assert.Nil(t, job)
}

func TestLoad_InvalidYAML(t *testing.T) {
	job, err := Load(writeJob(t, "{{invalid"))
	assert.Error(t, err)
	assert.Nil(t, job)
}

func TestLoad_ValidationFailures(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad about URL", "about: not-a-url\n"},
		{"negative padding", "padding: -1\n"},
		{"rating out of range", "rating: 9\n"},
		{"title without value", "title:\n  - lang: en\n"},
		{"history without action", "history:\n  - when: \"2024-01-01\"\n"},
		{"bad language tag", "title:\n  - lang: \"!!\"\n    value: x\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			job, err := Load(writeJob(t, c.content))
			assert.Error(t, err)
			assert.Nil(t, job)
		})
	}
}

func TestParseDate(t *testing.T) {
	cases := map[string]string{
		"2024":                      "2024",
		"2024-03":                   "2024-03",
		"2024-03-01":                "2024-03-01",
		"2024-03-01T10:30:00":       "2024-03-01T10:30:00",
		"2024-03-01T10:30:00+01:00": "2024-03-01T10:30:00+01:00",
		"2024-03-01T10:30:00-05:30": "2024-03-01T10:30:00-05:30",
	}
	for input, want := range cases {
		d, err := parseDate(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, d.String(), "input %q", input)
	}

	d, err := parseDate("2024-03-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T10:30:00+00:00", d.String())
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{
		"",
		"yesterday",
		"2024-03-01T10:30:00x01:00",  // bogus offset sign
		"2024-03-01T10:30:00+01:00!", // trailing garbage
		"2024-03-01extra",
	} {
		_, err := parseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestApply(t *testing.T) {
	job := &Job{
		Title:      []LangText{{Lang: "de", Value: "Bericht"}, {Value: "Report"}},
		Creators:   []string{"Jane Doe"},
		Format:     "application/pdf",
		CreateDate: "2024-03-01",
		History:    []Event{{Action: "created", When: "2024-03-01", SoftwareAgent: "reportgen"}},
	}
	w := xmp.New(xmp.WithPadding(0))
	require.NoError(t, Apply(job, w))

	packet, err := w.Finish()
	require.NoError(t, err)
	s := string(packet)

	assert.Contains(t, s, `<rdf:li xml:lang="de">Bericht</rdf:li>`)
	assert.Contains(t, s, "<rdf:li>Report</rdf:li>")
	assert.Contains(t, s, "<dc:creator><rdf:Seq><rdf:li>Jane Doe</rdf:li></rdf:Seq></dc:creator>")
	assert.Contains(t, s, "<xmp:CreateDate>2024-03-01</xmp:CreateDate>")
	assert.Contains(t, s, "<stEvt:action>created</stEvt:action>")
	assert.Contains(t, s, "<stEvt:softwareAgent>reportgen</stEvt:softwareAgent>")
}

func TestApplyCustomProperties(t *testing.T) {
	job := &Job{
		Properties: []Property{
			{Namespace: "https://example.com/schema/", Prefix: "ex", Name: "status", Value: "final"},
			{Namespace: "https://example.com/schema/", Prefix: "ex", Name: "tags", Values: []string{"a", "b"}},
			{Namespace: "https://example.com/schema/", Prefix: "ex", Name: "steps", Values: []string{"one", "two"}, Ordered: true},
		},
	}
	w := xmp.New(xmp.WithPadding(0))
	require.NoError(t, Apply(job, w))

	packet, err := w.Finish()
	require.NoError(t, err)
	s := string(packet)

	assert.Contains(t, s, "<ex:status>final</ex:status>")
	assert.Contains(t, s, "<ex:tags><rdf:Bag><rdf:li>a</rdf:li><rdf:li>b</rdf:li></rdf:Bag></ex:tags>")
	assert.Contains(t, s, "<ex:steps><rdf:Seq><rdf:li>one</rdf:li><rdf:li>two</rdf:li></rdf:Seq></ex:steps>")
	assert.Contains(t, s, `xmlns:ex="https://example.com/schema/"`)
}

func TestApplyDerivedIdentity(t *testing.T) {
	job := &Job{DeriveFrom: "report.pdf"}
	w := xmp.New(xmp.WithPadding(0))
	require.NoError(t, Apply(job, w))

	packet, err := w.Finish()
	require.NoError(t, err)
	s := string(packet)

	assert.Contains(t, s, "<xmpMM:DocumentID>"+xmp.DeriveDocumentID("report.pdf")+"</xmpMM:DocumentID>")
	assert.Contains(t, s, "<xmpMM:InstanceID>xmp.iid:")
}

func TestRender(t *testing.T) {
	path := writeJob(t, `padding: 0
creators:
  - Jane Doe
`)
	packet, err := Render(path)
	require.NoError(t, err)
	s := string(packet)
	assert.Contains(t, s, "<dc:creator><rdf:Seq><rdf:li>Jane Doe</rdf:li></rdf:Seq></dc:creator>")
	assert.Contains(t, s, `<?xpacket end="r"?>`)
}
