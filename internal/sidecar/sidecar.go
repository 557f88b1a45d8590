// Package sidecar loads YAML job files describing the metadata of a
// document and renders them into XMP packets.
package sidecar

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/xmp-go/xmp"
)

// ErrJobNotFound is returned when the job file does not exist.
// Callers can check for this with errors.Is(err, sidecar.ErrJobNotFound).
var ErrJobNotFound = errors.New("job file not found")

// LangText is one language alternative in a job file. An empty lang
// marks the default entry.
type LangText struct {
	Lang  string `yaml:"lang,omitempty"`
	Value string `yaml:"value" validate:"required"`
}

// Event is one document history entry.
type Event struct {
	Action        string `yaml:"action" validate:"required"`
	When          string `yaml:"when,omitempty"`
	SoftwareAgent string `yaml:"software_agent,omitempty"`
	InstanceID    string `yaml:"instance_id,omitempty"`
}

// Property is a custom property outside the well-known catalog.
type Property struct {
	Namespace string   `yaml:"namespace" validate:"required,url"`
	Prefix    string   `yaml:"prefix" validate:"required"`
	Name      string   `yaml:"name" validate:"required"`
	Value     string   `yaml:"value,omitempty"`
	Values    []string `yaml:"values,omitempty"`
	Ordered   bool     `yaml:"ordered,omitempty"`
}

// Job describes one sidecar packet.
type Job struct {
	About   string `yaml:"about,omitempty" validate:"omitempty,url"`
	Toolkit string `yaml:"toolkit,omitempty"`
	Padding *int   `yaml:"padding,omitempty" validate:"omitempty,min=0"`

	Title       []LangText `yaml:"title,omitempty" validate:"dive"`
	Description []LangText `yaml:"description,omitempty" validate:"dive"`
	Rights      []LangText `yaml:"rights,omitempty" validate:"dive"`
	Creators    []string   `yaml:"creators,omitempty"`
	Subjects    []string   `yaml:"subjects,omitempty"`
	Publishers  []string   `yaml:"publishers,omitempty"`
	Languages   []string   `yaml:"languages,omitempty"`
	Format      string     `yaml:"format,omitempty"`
	Identifier  string     `yaml:"identifier,omitempty"`

	CreatorTool string `yaml:"creator_tool,omitempty"`
	CreateDate  string `yaml:"create_date,omitempty"`
	ModifyDate  string `yaml:"modify_date,omitempty"`
	Rating      *int   `yaml:"rating,omitempty" validate:"omitempty,min=-1,max=5"`

	Keywords string `yaml:"keywords,omitempty"`
	Producer string `yaml:"producer,omitempty"`

	DocumentID string  `yaml:"document_id,omitempty"`
	DeriveFrom string  `yaml:"derive_id_from,omitempty"`
	History    []Event `yaml:"history,omitempty" validate:"dive"`

	Properties []Property `yaml:"properties,omitempty" validate:"dive"`
}

// Load reads and validates a job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(job); err != nil {
		return nil, err
	}
	if err := checkLanguages(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// checkLanguages verifies every non-default language tag parses as
// BCP 47. The default entry carries no tag, so it is exempt.
func checkLanguages(job *Job) error {
	for _, alts := range [][]LangText{job.Title, job.Description, job.Rights} {
		for _, alt := range alts {
			if alt.Lang == "" {
				continue
			}
			if _, err := language.Parse(alt.Lang); err != nil {
				return fmt.Errorf("language tag %q: %w", alt.Lang, err)
			}
		}
	}
	for _, lang := range job.Languages {
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("language tag %q: %w", lang, err)
		}
	}
	return nil
}

// Writer builds a packet writer configured by the job's packet options.
func (j *Job) Writer() *xmp.PacketWriter {
	opts := []xmp.Option{}
	if j.About != "" {
		opts = append(opts, xmp.WithAbout(j.About))
	}
	if j.Toolkit != "" {
		opts = append(opts, xmp.WithToolkit(j.Toolkit))
	}
	if j.Padding != nil {
		opts = append(opts, xmp.WithPadding(*j.Padding))
	}
	return xmp.New(opts...)
}

func langAlt(alts []LangText) xmp.LangAlt {
	entries := make(xmp.LangAlt, len(alts))
	for i, alt := range alts {
		entries[i] = xmp.LangEntry{Lang: alt.Lang, Value: alt.Value}
	}
	return entries
}

// parseDate parses a truncated ISO 8601 date. time.Parse consumes the
// whole input, so trailing garbage and malformed offsets are rejected
// rather than silently dropped.
func parseDate(s string) (xmp.Date, error) {
	if t, err := time.Parse("2006-01-02T15:04:05Z07:00", s); err == nil {
		return xmp.FromTime(t), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return xmp.LocalTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return xmp.CalendarDate(t.Year(), int(t.Month()), t.Day()), nil
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return xmp.YearMonth(t.Year(), int(t.Month())), nil
	}
	if t, err := time.Parse("2006", s); err == nil {
		return xmp.YearDate(t.Year()), nil
	}
	return xmp.Date{}, fmt.Errorf("unrecognized date %q", s)
}

// Apply writes the job's metadata into the packet writer.
func Apply(job *Job, w *xmp.PacketWriter) error {
	if len(job.Title) > 0 {
		if err := w.Title(langAlt(job.Title)); err != nil {
			return err
		}
	}
	if len(job.Description) > 0 {
		if err := w.Description(langAlt(job.Description)); err != nil {
			return err
		}
	}
	if len(job.Rights) > 0 {
		if err := w.Rights(langAlt(job.Rights)); err != nil {
			return err
		}
	}
	if len(job.Creators) > 0 {
		if err := w.Creator(job.Creators...); err != nil {
			return err
		}
	}
	if len(job.Subjects) > 0 {
		if err := w.Subject(job.Subjects...); err != nil {
			return err
		}
	}
	if len(job.Publishers) > 0 {
		if err := w.Publisher(job.Publishers...); err != nil {
			return err
		}
	}
	if len(job.Languages) > 0 {
		if err := w.Language(job.Languages...); err != nil {
			return err
		}
	}
	if job.Format != "" {
		if err := w.Format(job.Format); err != nil {
			return err
		}
	}
	if job.Identifier != "" {
		if err := w.Identifier(job.Identifier); err != nil {
			return err
		}
	}
	if job.CreatorTool != "" {
		if err := w.CreatorTool(job.CreatorTool); err != nil {
			return err
		}
	}
	if job.CreateDate != "" {
		d, err := parseDate(job.CreateDate)
		if err != nil {
			return err
		}
		if err := w.CreateDate(d); err != nil {
			return err
		}
	}
	if job.ModifyDate != "" {
		d, err := parseDate(job.ModifyDate)
		if err != nil {
			return err
		}
		if err := w.ModifyDate(d); err != nil {
			return err
		}
	}
	if job.Rating != nil {
		if err := w.Rating(*job.Rating); err != nil {
			return err
		}
	}
	if job.Keywords != "" {
		if err := w.PDFKeywords(job.Keywords); err != nil {
			return err
		}
	}
	if job.Producer != "" {
		if err := w.Producer(job.Producer); err != nil {
			return err
		}
	}
	if err := applyIdentity(job, w); err != nil {
		return err
	}
	if err := applyHistory(job, w); err != nil {
		return err
	}
	return applyCustom(job, w)
}

func applyIdentity(job *Job, w *xmp.PacketWriter) error {
	id := job.DocumentID
	if id == "" && job.DeriveFrom != "" {
		id = xmp.DeriveDocumentID(job.DeriveFrom)
	}
	if id == "" {
		return nil
	}
	if err := w.SetDocumentID(id); err != nil {
		return err
	}
	return w.SetInstanceID(xmp.NewInstanceID())
}

func applyHistory(job *Job, w *xmp.PacketWriter) error {
	if len(job.History) == 0 {
		return nil
	}
	history, err := w.History()
	if err != nil {
		return err
	}
	for _, ev := range job.History {
		event, err := history.AddEvent()
		if err != nil {
			return err
		}
		if err := event.Action(xmp.EventAction(ev.Action)); err != nil {
			return err
		}
		if ev.When != "" {
			d, err := parseDate(ev.When)
			if err != nil {
				return err
			}
			if err := event.When(d); err != nil {
				return err
			}
		}
		if ev.SoftwareAgent != "" {
			if err := event.SoftwareAgent(ev.SoftwareAgent); err != nil {
				return err
			}
		}
		if ev.InstanceID != "" {
			if err := event.InstanceID(ev.InstanceID); err != nil {
				return err
			}
		}
		if err := event.Close(); err != nil {
			return err
		}
	}
	return history.Close()
}

func applyCustom(job *Job, w *xmp.PacketWriter) error {
	for _, p := range job.Properties {
		ns := xmp.Namespace{Prefix: p.Prefix, URI: p.Namespace}
		var value xmp.Value
		switch {
		case len(p.Values) > 0:
			collection := xmp.Unordered
			if p.Ordered {
				collection = xmp.Ordered
			}
			value = xmp.TextArray(collection, p.Values...)
		default:
			value = xmp.Text(p.Value)
		}
		if err := w.SetProperty(ns, p.Name, value); err != nil {
			return err
		}
	}
	return nil
}

// Render loads a job file and returns the finished packet.
func Render(path string) ([]byte, error) {
	job, err := Load(path)
	if err != nil {
		return nil, err
	}
	w := job.Writer()
	if err := Apply(job, w); err != nil {
		return nil, err
	}
	return w.Finish()
}
