// Package session ties one editing session to one owned document. There is
// no ambient shared document: every session constructs or receives its own,
// and concurrent sessions never share state.
package session

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-layoutmock/pkg/catalog"
	"github.com/goliatone/go-layoutmock/pkg/layout"
)

// Option customises a session at construction time.
type Option func(*Session)

// WithLogger attaches a zap logger; every applied mutation is audit-logged
// with the session id. The default logger is a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithID pins the session id instead of generating one.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// Session owns a single document for its lifetime and routes every mutation
// through it. Sessions follow the document's single-goroutine model; they do
// no locking of their own.
type Session struct {
	id  string
	doc *layout.Document
	log *zap.Logger
}

// New wraps an existing document in a session.
func New(doc *layout.Document, options ...Option) (*Session, error) {
	if doc == nil {
		return nil, errors.New("session: document is required")
	}
	s := &Session{
		id:  uuid.NewString(),
		doc: doc,
		log: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.log = s.log.With(zap.String("session_id", s.id))
	s.log.Info("session started", zap.String("object_type", doc.ObjectType()))
	return s, nil
}

// Open starts a session from a built-in catalog template.
func Open(templateName string, options ...Option) (*Session, error) {
	doc, err := catalog.Load(templateName)
	if err != nil {
		return nil, err
	}
	return New(doc, options...)
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Document exposes the owned document for read-only consumers such as
// renderers.
func (s *Session) Document() *layout.Document {
	return s.doc
}

// AddSection appends an empty section.
func (s *Session) AddSection(title string) (*layout.Section, error) {
	sec, err := s.doc.AddSection(title)
	if err != nil {
		return nil, err
	}
	s.log.Info("section added", zap.String("section", sec.ID), zap.String("title", title))
	return sec, nil
}

// RemoveSection deletes a section and its fields.
func (s *Session) RemoveSection(id string) error {
	if err := s.doc.RemoveSection(id); err != nil {
		return err
	}
	s.log.Info("section removed", zap.String("section", id))
	return nil
}

// ReorderSection moves a section to a new clamped index.
func (s *Session) ReorderSection(id string, newIndex int) error {
	if err := s.doc.ReorderSection(id, newIndex); err != nil {
		return err
	}
	s.log.Info("section reordered", zap.String("section", id), zap.Int("index", newIndex))
	return nil
}

// AddField appends a field to a section.
func (s *Session) AddField(sectionID string, spec layout.FieldSpec) (*layout.Field, error) {
	f, err := s.doc.AddField(sectionID, spec)
	if err != nil {
		return nil, err
	}
	s.log.Info("field added", zap.String("section", sectionID), zap.String("field", f.ID), zap.String("type", string(f.Type)))
	return f, nil
}

// RemoveField irreversibly deletes a field.
func (s *Session) RemoveField(id string) error {
	if err := s.doc.RemoveField(id); err != nil {
		return err
	}
	s.log.Info("field removed", zap.String("field", id))
	return nil
}

// SetVisibility hides or shows a field.
func (s *Session) SetVisibility(id string, visible bool) error {
	if err := s.doc.SetVisibility(id, visible); err != nil {
		return err
	}
	s.log.Info("field visibility set", zap.String("field", id), zap.Bool("visible", visible))
	return nil
}

// MoveField nudges a field up or down within its section.
func (s *Session) MoveField(id string, dir layout.Direction) error {
	if err := s.doc.MoveField(id, dir); err != nil {
		return err
	}
	s.log.Info("field moved", zap.String("field", id), zap.String("direction", string(dir)))
	return nil
}

// SwapFields exchanges the positions of two fields.
func (s *Session) SwapFields(a, b string) error {
	if err := s.doc.SwapFields(a, b); err != nil {
		return err
	}
	s.log.Info("fields swapped", zap.String("field_a", a), zap.String("field_b", b))
	return nil
}

// UpdateFieldValue replaces a field's value.
func (s *Session) UpdateFieldValue(id, value string) error {
	if err := s.doc.UpdateFieldValue(id, value); err != nil {
		return err
	}
	s.log.Info("field value updated", zap.String("field", id))
	return nil
}

// UpdateFieldLabel replaces a field's label.
func (s *Session) UpdateFieldLabel(id, label string) error {
	if err := s.doc.UpdateFieldLabel(id, label); err != nil {
		return err
	}
	s.log.Info("field label updated", zap.String("field", id))
	return nil
}

// Lint runs explicit per-type value validation over the document.
func (s *Session) Lint() []layout.Issue {
	return s.doc.Lint()
}

// Export serializes the owned document, hidden fields included.
func (s *Session) Export() ([]byte, error) {
	return s.doc.EncodeJSON()
}

// Import replaces the owned document wholesale with the decoded payload. The
// payload is decoded and validated into a brand-new document first; on any
// failure the current document is left untouched, so no partial import state
// is ever observable.
func (s *Session) Import(raw []byte) error {
	doc, err := layout.DecodeJSON(raw)
	if err != nil {
		return err
	}
	s.doc = doc
	s.log.Info("document imported", zap.String("object_type", doc.ObjectType()), zap.Int("sections", len(doc.Sections())))
	return nil
}

// Reset discards the owned document and reloads a catalog template.
func (s *Session) Reset(templateName string) error {
	doc, err := catalog.Load(templateName)
	if err != nil {
		return err
	}
	s.doc = doc
	s.log.Info("document reset", zap.String("template", templateName))
	return nil
}
