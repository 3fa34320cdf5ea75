package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/runehealth/rune_backend/config"
	"github.com/runehealth/rune_backend/internal/engine"
	"github.com/runehealth/rune_backend/internal/intake"
	"github.com/runehealth/rune_backend/internal/store"
)

var fixedNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) Service {
	t.Helper()
	eng := engine.New(engine.Config{}).WithClock(func() time.Time { return fixedNow })
	svc := New(store.NewMemoryStore(time.Hour), eng, nil, &config.Config{}).(*sessionService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestStartSeedsGreeting(t *testing.T) {
	svc := newTestService(t)
	sess, err := svc.Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sess.ID == "" {
		t.Error("session has no ID")
	}
	if len(sess.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(sess.Messages))
	}
	if sess.Messages[0].Sender != intake.SenderAssistant {
		t.Errorf("greeting sender = %q", sess.Messages[0].Sender)
	}
	if sess.Messages[0].Text != engine.Greeting {
		t.Errorf("greeting text = %q", sess.Messages[0].Text)
	}
	if sess.Record.Complete() {
		t.Error("fresh record must not be complete")
	}
}

func TestGetUnknownSession(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestProcessUtteranceAppendsAndMerges(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	sess, _ := svc.Start(ctx)

	res, err := svc.ProcessUtterance(ctx, sess.ID, "My name is Bob and I am 30 years old")
	if err != nil {
		t.Fatalf("ProcessUtterance: %v", err)
	}
	if res.Record.Name != "Bob" || res.Record.Age != 30 {
		t.Errorf("record = %+v", res.Record)
	}
	if len(res.Updates) != 2 {
		t.Errorf("got %d updates, want 2", len(res.Updates))
	}

	// Greeting + user + assistant.
	msgs, err := svc.Messages(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	if msgs[1].Sender != intake.SenderUser || msgs[1].Text != "My name is Bob and I am 30 years old" {
		t.Errorf("user message = %+v", msgs[1])
	}
	if msgs[2].Sender != intake.SenderAssistant || msgs[2].Text != res.Narrative {
		t.Errorf("assistant message = %+v", msgs[2])
	}

	// Second utterance sees the merged record: name guard holds.
	res2, err := svc.ProcessUtterance(ctx, sess.ID, "my name is Carol")
	if err != nil {
		t.Fatalf("ProcessUtterance: %v", err)
	}
	if res2.Record.Name != "Bob" {
		t.Errorf("name overwritten to %q", res2.Record.Name)
	}
	if len(res2.Updates) != 0 {
		t.Errorf("guarded field produced updates: %+v", res2.Updates)
	}
}

func TestProcessUtteranceEmpty(t *testing.T) {
	svc := newTestService(t)
	sess, _ := svc.Start(context.Background())
	if _, err := svc.ProcessUtterance(context.Background(), sess.ID, "   "); !errors.Is(err, ErrEmptyUtterance) {
		t.Errorf("got %v, want ErrEmptyUtterance", err)
	}
}

func TestSetFieldOverwritesAndClears(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	sess, _ := svc.Start(ctx)

	if _, err := svc.ProcessUtterance(ctx, sess.ID, "my name is Bob"); err != nil {
		t.Fatalf("ProcessUtterance: %v", err)
	}

	// Direct edit overwrites where extraction would not.
	rec, err := svc.SetField(ctx, sess.ID, intake.FieldName, "Robert Jones")
	if err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if rec.Name != "Robert Jones" {
		t.Errorf("name = %q", rec.Name)
	}

	// Clearing un-fills.
	rec, err = svc.SetField(ctx, sess.ID, intake.FieldName, "")
	if err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if rec.Filled(intake.FieldName) {
		t.Error("cleared name still filled")
	}
}

func TestSetFieldDateOfBirthRecomputesAge(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	sess, _ := svc.Start(ctx)

	rec, err := svc.SetField(ctx, sess.ID, intake.FieldDateOfBirth, "1990-06-15")
	if err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if rec.Age != 33 {
		t.Errorf("age = %d, want 33", rec.Age)
	}
}

func TestSetFieldValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	sess, _ := svc.Start(ctx)

	cases := []struct {
		field intake.Field
		value string
	}{
		{intake.FieldAge, "abc"},
		{intake.FieldAge, "150"},
		{intake.FieldAge, "-1"},
		{intake.FieldDateOfBirth, "15/06/1990"},
		{intake.FieldDateOfBirth, "2099-01-01"},
		{intake.FieldGender, "unicorn"},
	}
	for _, tc := range cases {
		if _, err := svc.SetField(ctx, sess.ID, tc.field, tc.value); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("SetField(%s, %q): got %v, want ErrInvalidValue", tc.field, tc.value, err)
		}
	}

	if _, err := svc.SetField(ctx, sess.ID, intake.Field("ssn"), "123"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("got %v, want ErrUnknownField", err)
	}
}

func TestSetFieldMobileNormalized(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	sess, _ := svc.Start(ctx)

	rec, err := svc.SetField(ctx, sess.ID, intake.FieldMobile, "987-654-3210")
	if err != nil {
		t.Fatalf("SetField: %v", err)
	}
	// No default region configured, so normalization falls back to digits.
	if rec.Mobile != "9876543210" {
		t.Errorf("mobile = %q, want 9876543210", rec.Mobile)
	}
}

func TestSaveRejectsEmptyRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	sess, _ := svc.Start(ctx)

	if _, err := svc.Save(ctx, sess.ID); !errors.Is(err, ErrEmptyRecord) {
		t.Errorf("got %v, want ErrEmptyRecord", err)
	}
}

func TestSaveReportsFilledCount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	sess, _ := svc.Start(ctx)

	if _, err := svc.ProcessUtterance(ctx, sess.ID, "My name is Bob and I am 30 years old"); err != nil {
		t.Fatalf("ProcessUtterance: %v", err)
	}

	res, err := svc.Save(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if res.FilledFields != 2 {
		t.Errorf("filled = %d, want 2", res.FilledFields)
	}
	if res.TotalFields != intake.FormFieldCount {
		t.Errorf("total = %d, want %d", res.TotalFields, intake.FormFieldCount)
	}
	if res.Message == "" {
		t.Error("empty save message")
	}
}
