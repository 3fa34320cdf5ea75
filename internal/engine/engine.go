// Package engine turns free-form intake utterances into typed patient-record
// updates. Each field has an ordered rule list; the first rule that matches
// and validates wins. Unparseable input is never an error: the engine always
// returns a result, at worst with no updates and a generic narrative.
package engine

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/runehealth/rune_backend/internal/intake"
)

// DateOrder selects how the numeric D/M/YYYY date-of-birth form is read.
// The assistant historically assumed day-first; month-first input from
// international users is ambiguous, so the order is an explicit choice
// rather than a guess.
type DateOrder string

const (
	DayFirst   DateOrder = "day-first"
	MonthFirst DateOrder = "month-first"
)

// Config extends the built-in rule tables. Zero value is a working engine.
type Config struct {
	// DateOrder for numeric dates. Defaults to DayFirst.
	DateOrder DateOrder

	// ExtraCities adds to the bare-mention city list for address extraction.
	ExtraCities []string

	// ExtraSymptomKeywords adds to the keyword list that routes a whole
	// utterance into symptoms.
	ExtraSymptomKeywords []string
}

// Result is the outcome of one Extract call.
type Result struct {
	// Updates that passed validation and the write guards, in field order.
	Updates []intake.FieldUpdate `json:"updates"`

	// Record is the snapshot with Updates merged in.
	Record intake.PatientRecord `json:"record"`

	// Missing lists required fields still absent after the merge.
	Missing []intake.Field `json:"missing"`

	// Narrative is the assistant's reply for this utterance.
	Narrative string `json:"narrative"`
}

// Engine is a pure extractor: no state beyond its configuration and clock.
type Engine struct {
	dateOrder       DateOrder
	cityRE          *regexp.Regexp
	symptomKeywords []string
	now             func() time.Time
}

// New builds an engine from config.
func New(cfg Config) *Engine {
	order := cfg.DateOrder
	if order != MonthFirst {
		order = DayFirst
	}

	cities := append(append([]string{}, knownCities...), cfg.ExtraCities...)
	escaped := make([]string, 0, len(cities))
	for _, c := range cities {
		c = strings.TrimSpace(strings.ToLower(c))
		if c != "" {
			escaped = append(escaped, regexp.QuoteMeta(c))
		}
	}

	keywords := append(append([]string{}, symptomKeywords...), cfg.ExtraSymptomKeywords...)

	return &Engine{
		dateOrder:       order,
		cityRE:          regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`),
		symptomKeywords: keywords,
		now:             time.Now,
	}
}

// WithClock overrides the engine's clock; tests use it to pin "today" for
// age computation and date bounds.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Extract runs every field extractor over one finalized utterance against
// the given record snapshot. Field order is fixed: name, date of birth, age,
// gender, mobile, address, symptoms. Date of birth must precede age so a
// date's day/month/year components cannot misfire as a bare age, and name
// runs first so leading capitalized tokens are not consumed elsewhere.
func (e *Engine) Extract(utterance string, snapshot intake.PatientRecord) Result {
	now := e.now()
	msg := strings.TrimSpace(utterance)
	lower := strings.ToLower(msg)

	var updates []intake.FieldUpdate
	var extracted []string

	if !snapshot.Filled(intake.FieldName) {
		if name, ok := extractName(msg); ok {
			updates = append(updates, intake.NameUpdate(name))
			extracted = append(extracted, "name: "+name)
		}
	}

	dobFired := false
	if !snapshot.Filled(intake.FieldDateOfBirth) {
		if dob, ok := e.extractDateOfBirth(lower, now); ok {
			updates = append(updates, intake.DateOfBirthUpdate(dob))
			extracted = append(extracted, fmt.Sprintf("date of birth and age: %d", intake.AgeOn(dob, now)))
			dobFired = true
		}
	}

	// A successful date-of-birth extraction already wrote the age; running
	// the age rules on the same utterance would misread the date's numbers.
	if !dobFired && !snapshot.Filled(intake.FieldAge) {
		if age, ok := extractAge(lower); ok {
			updates = append(updates, intake.AgeUpdate(age))
			extracted = append(extracted, fmt.Sprintf("age: %d years", age))
		}
	}

	if !snapshot.Filled(intake.FieldGender) {
		if g, ok := extractGender(lower); ok {
			updates = append(updates, intake.GenderUpdate(g))
			extracted = append(extracted, "gender: "+string(g))
		}
	}

	if !snapshot.Filled(intake.FieldMobile) {
		if digits, raw, ok := extractMobile(msg); ok {
			updates = append(updates, intake.MobileUpdate(digits))
			extracted = append(extracted, "mobile: "+raw)
		}
	}

	if !snapshot.Filled(intake.FieldAddress) {
		if addr, ok := e.extractAddress(msg); ok {
			updates = append(updates, intake.AddressUpdate(addr))
			extracted = append(extracted, "address: "+addr)
		}
	}

	if text, ok := e.extractSymptoms(msg, lower); ok {
		updates = append(updates, intake.SymptomsUpdate(text))
		extracted = append(extracted, "symptoms: "+text)
	}

	merged := snapshot
	merged.Apply(updates, now)
	missing := merged.MissingRequired()

	return Result{
		Updates:   updates,
		Record:    merged,
		Missing:   missing,
		Narrative: buildNarrative(extracted, missing),
	}
}
