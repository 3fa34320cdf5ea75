// Package session orchestrates intake conversations: it owns session
// lifecycle, feeds finalized utterances through the extraction engine,
// and exposes the direct form-edit and save paths.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/runehealth/rune_backend/config"
	"github.com/runehealth/rune_backend/internal/engine"
	"github.com/runehealth/rune_backend/internal/intake"
	"github.com/runehealth/rune_backend/internal/store"
	"github.com/runehealth/rune_backend/pkg/phone"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// UtteranceResult is what one processed utterance produced.
type UtteranceResult struct {
	Updates   []intake.FieldUpdate `json:"updates"`
	Record    intake.PatientRecord `json:"record"`
	Missing   []intake.Field       `json:"missing"`
	Narrative string               `json:"narrative"`
}

// SaveResult reports the save outcome for client feedback.
type SaveResult struct {
	FilledFields int    `json:"filledFields"`
	TotalFields  int    `json:"totalFields"`
	Message      string `json:"message"`
}

// savedEvent is the NATS payload published when a form is saved.
type savedEvent struct {
	SessionID    string               `json:"sessionId"`
	Record       intake.PatientRecord `json:"record"`
	FilledFields int                  `json:"filledFields"`
	SavedAt      time.Time            `json:"savedAt"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Start creates a session with an empty record and the assistant greeting.
	Start(ctx context.Context) (*intake.Session, error)

	Get(ctx context.Context, id string) (*intake.Session, error)
	Messages(ctx context.Context, id string) ([]intake.Message, error)

	// ProcessUtterance appends the user message, runs extraction against the
	// current record, merges the surviving updates, appends the assistant
	// narrative, and persists. Utterances on the same session are serialized;
	// callers on different sessions never contend.
	ProcessUtterance(ctx context.Context, id, text string) (*UtteranceResult, error)

	// SetField is the direct form-edit path. Unlike extraction it overwrites,
	// and an empty value clears the field.
	SetField(ctx context.Context, id string, field intake.Field, value string) (*intake.PatientRecord, error)

	// Save finalizes the form. It refuses an entirely empty record and
	// publishes the record when event publication is configured.
	Save(ctx context.Context, id string) (*SaveResult, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type sessionService struct {
	st  store.SessionStore
	eng *engine.Engine
	nc  *nats.Conn
	cfg *config.Config
	now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(st store.SessionStore, eng *engine.Engine, nc *nats.Conn, cfg *config.Config) Service {
	return &sessionService{
		st:    st,
		eng:   eng,
		nc:    nc,
		cfg:   cfg,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// lockFor returns the per-session mutex, creating it on first use. Locks are
// never reclaimed; sessions are short-lived and the map stays small.
func (s *sessionService) lockFor(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func (s *sessionService) Start(ctx context.Context) (*intake.Session, error) {
	now := s.now()
	sess := &intake.Session{
		ID: uuid.NewString(),
		Messages: []intake.Message{{
			ID:        uuid.NewString(),
			Text:      engine.Greeting,
			Sender:    intake.SenderAssistant,
			Timestamp: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.st.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	slog.InfoContext(ctx, "session started", "session_id", sess.ID)
	return sess, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*intake.Session, error) {
	sess, err := s.st.Get(ctx, id)
	if err == store.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) Messages(ctx context.Context, id string) ([]intake.Message, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return sess.Messages, nil
}

func (s *sessionService) ProcessUtterance(ctx context.Context, id, text string) (*UtteranceResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyUtterance
	}

	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	res := s.eng.Extract(text, sess.Record)

	sess.Messages = append(sess.Messages,
		intake.Message{
			ID:        uuid.NewString(),
			Text:      text,
			Sender:    intake.SenderUser,
			Timestamp: now,
		},
		intake.Message{
			ID:        uuid.NewString(),
			Text:      res.Narrative,
			Sender:    intake.SenderAssistant,
			Timestamp: now,
		},
	)
	sess.Record = res.Record
	sess.UpdatedAt = now

	if err := s.st.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	slog.DebugContext(ctx, "utterance processed",
		"session_id", id,
		"updates", len(res.Updates),
		"missing", len(res.Missing),
	)

	return &UtteranceResult{
		Updates:   res.Updates,
		Record:    res.Record,
		Missing:   res.Missing,
		Narrative: res.Narrative,
	}, nil
}

func (s *sessionService) SetField(ctx context.Context, id string, field intake.Field, value string) (*intake.PatientRecord, error) {
	value = strings.TrimSpace(value)

	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec := &sess.Record

	switch field {
	case intake.FieldName:
		rec.Name = value
	case intake.FieldAge:
		if value == "" {
			rec.Age = 0
			break
		}
		age, err := strconv.Atoi(value)
		if err != nil || age <= 0 || age >= 150 {
			return nil, fmt.Errorf("%w: age %q", ErrInvalidValue, value)
		}
		rec.Age = age
	case intake.FieldDateOfBirth:
		if value == "" {
			rec.DateOfBirth = time.Time{}
			break
		}
		dob, err := time.Parse("2006-01-02", value)
		if err != nil || !dob.After(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)) || !dob.Before(now) {
			return nil, fmt.Errorf("%w: date of birth %q", ErrInvalidValue, value)
		}
		rec.SetDateOfBirth(dob, now)
	case intake.FieldGender:
		if value == "" {
			rec.Gender = ""
			break
		}
		g, ok := intake.ParseGender(value)
		if !ok {
			return nil, fmt.Errorf("%w: gender %q", ErrInvalidValue, value)
		}
		rec.Gender = g
	case intake.FieldMobile:
		if value == "" {
			rec.Mobile = ""
			break
		}
		rec.Mobile = phone.Normalize(value, s.cfg.Intake.DefaultRegion)
	case intake.FieldAddress:
		rec.Address = value
	case intake.FieldSymptoms:
		rec.Symptoms = value
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	sess.UpdatedAt = now
	if err := s.st.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	cp := sess.Record
	return &cp, nil
}

func (s *sessionService) Save(ctx context.Context, id string) (*SaveResult, error) {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	filled := len(sess.Record.FilledFields())
	if filled == 0 {
		return nil, ErrEmptyRecord
	}

	now := s.now()

	// Publish NATS event
	if s.nc != nil {
		subject := s.cfg.Nats.SavedSubject
		if subject == "" {
			subject = "intake.record.saved"
		}
		payload, err := json.Marshal(savedEvent{
			SessionID:    sess.ID,
			Record:       sess.Record,
			FilledFields: filled,
			SavedAt:      now,
		})
		if err != nil {
			return nil, fmt.Errorf("marshal saved event: %w", err)
		}
		if err := s.nc.Publish(subject, payload); err != nil {
			slog.WarnContext(ctx, "publish saved event failed", "session_id", id, "error", err)
		}
	}

	slog.InfoContext(ctx, "form saved", "session_id", id, "filled_fields", filled)

	return &SaveResult{
		FilledFields: filled,
		TotalFields:  intake.FormFieldCount,
		Message:      fmt.Sprintf("Medical form data saved successfully! %d fields were filled.", filled),
	}, nil
}
