package engine

import (
	"strings"
	"testing"
	"time"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice Smith", "Alice Smith"},
		{"hi Alice", "Alice"},
		{"Hello  Rune  Alice   Smith", "Alice Smith"},
		{"rune", ""},
	}
	for _, tt := range tests {
		if got := cleanName(tt.in); got != tt.want {
			t.Errorf("cleanName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractNamePatterns(t *testing.T) {
	tests := []struct {
		utterance string
		want      string
		ok        bool
	}{
		{"My name is Alice Smith", "Alice Smith", true},
		{"I'm Alice", "Alice", true},
		{"call me John Doe", "John Doe", true},
		{"Hello, Ravi Kumar speaking", "Ravi Kumar", true},
		{"John Smith and I need help", "John Smith", true},
		{"my name is X", "", false},             // too short after cleaning
		{"my name is Alice123", "", false},      // digits rejected
		{"I'm 45 years old", "", false},         // number, not a name
		{"completely unrelated text", "", false},
	}
	for _, tt := range tests {
		got, ok := extractName(tt.utterance)
		if ok != tt.ok || got != tt.want {
			t.Errorf("extractName(%q) = %q, %v; want %q, %v", tt.utterance, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractDateOfBirth(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		utterance string
		want      time.Time
		ok        bool
	}{
		{"i was born on 15/06/1990", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"date of birth is 1-12-1985", time.Date(1985, 12, 1, 0, 0, 0, 0, time.UTC), true},
		{"born on 15 june 1990", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"born on june 15, 1990", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"born on 31/02/1990", time.Time{}, false}, // rollover rejected
		{"born on 15/13/1990", time.Time{}, false}, // month out of range
		{"born on 01/01/1900", time.Time{}, false}, // lower bound exclusive
		{"born on 15/06/2090", time.Time{}, false}, // future
		{"born yesterday", time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := e.extractDateOfBirth(tt.utterance, fixedNow)
		if ok != tt.ok || !got.Equal(tt.want) {
			t.Errorf("extractDateOfBirth(%q) = %v, %v; want %v, %v", tt.utterance, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractAge(t *testing.T) {
	tests := []struct {
		utterance string
		want      int
		ok        bool
	}{
		{"i am 45 years old", 45, true},
		{"i'm 45", 45, true},
		{"45 years old", 45, true},
		{"age: 45", 45, true},
		{"age 45", 45, true},
		{"i am 0 years old", 0, false},
		{"i am 150 years old", 0, false},
		{"i am 149 years old", 149, true},
		{"no number here", 0, false},
	}
	for _, tt := range tests {
		got, ok := extractAge(tt.utterance)
		if ok != tt.ok || got != tt.want {
			t.Errorf("extractAge(%q) = %d, %v; want %d, %v", tt.utterance, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractGenderNormalization(t *testing.T) {
	tests := []struct {
		utterance string
		want      string
		ok        bool
	}{
		{"i am male", "male", true},
		{"gender is female", "female", true},
		{"a young boy", "male", true},
		{"i am a woman", "female", true},
		{"girl", "female", true},
		{"no gender mention", "", false},
	}
	for _, tt := range tests {
		got, ok := extractGender(tt.utterance)
		if ok != tt.ok || string(got) != tt.want {
			t.Errorf("extractGender(%q) = %q, %v; want %q, %v", tt.utterance, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractMobile(t *testing.T) {
	tests := []struct {
		utterance string
		digits    string
		ok        bool
	}{
		{"my phone is 9876543210", "9876543210", true},
		{"contact: 987 654 3210", "9876543210", true},
		{"9876 543 210", "9876543210", true},
		{"call 12345", "", false},
		{"no digits at all", "", false},
	}
	for _, tt := range tests {
		digits, _, ok := extractMobile(tt.utterance)
		if ok != tt.ok || digits != tt.digits {
			t.Errorf("extractMobile(%q) = %q, %v; want %q, %v", tt.utterance, digits, ok, tt.digits, tt.ok)
		}
	}
}

func TestExtractAddress(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		utterance string
		want      string
		ok        bool
	}{
		{"I live in Gachibowli and my phone is broken", "Gachibowli", true},
		{"address is Plot Seven Jubilee Hills", "Plot Seven Jubilee Hills", true},
		{"somewhere near Hyderabad", "Hyderabad", true},
		{"no location words", "", false},
	}
	for _, tt := range tests {
		got, ok := e.extractAddress(tt.utterance)
		if ok != tt.ok || got != tt.want {
			t.Errorf("extractAddress(%q) = %q, %v; want %q, %v", tt.utterance, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractSymptoms(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		utterance string
		want      string
		ok        bool
	}{
		{"my symptoms are fever and chills", "fever", true}, // lazy capture stops at "and"
		{"suffering from severe back pain", "severe back pain", true},
		{"I have a headache", "I have a headache", true}, // keyword routes whole utterance
		{"feeling dizzy", "dizzy", true},
		{"nothing wrong with me", "", false},
	}
	for _, tt := range tests {
		got, ok := e.extractSymptoms(tt.utterance, strings.ToLower(tt.utterance))
		if ok != tt.ok || got != tt.want {
			t.Errorf("extractSymptoms(%q) = %q, %v; want %q, %v", tt.utterance, got, ok, tt.want, tt.ok)
		}
	}
}
