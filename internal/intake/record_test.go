package intake

import (
	"testing"
	"time"
)

var now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAgeOn(t *testing.T) {
	tests := []struct {
		dob  time.Time
		want int
	}{
		{time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), 33}, // birthday not yet reached
		{time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), 34},  // birthday today
		{time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC), 33},  // birthday tomorrow
		{time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		if got := AgeOn(tt.dob, now); got != tt.want {
			t.Errorf("AgeOn(%v) = %d, want %d", tt.dob, got, tt.want)
		}
	}
}

func TestApplyWriteGuards(t *testing.T) {
	rec := PatientRecord{Name: "Alice", Age: 40}

	applied := rec.Apply([]FieldUpdate{
		NameUpdate("Bob"),
		AgeUpdate(25),
		GenderUpdate(GenderMale),
	}, now)

	if rec.Name != "Alice" || rec.Age != 40 {
		t.Errorf("guarded fields overwritten: %+v", rec)
	}
	if rec.Gender != GenderMale {
		t.Errorf("empty field not written: %+v", rec)
	}
	if len(applied) != 1 || applied[0].Field != FieldGender {
		t.Errorf("expected only the gender update to land, got %+v", applied)
	}
}

func TestApplySymptomsAlwaysAppends(t *testing.T) {
	rec := PatientRecord{}

	rec.Apply([]FieldUpdate{SymptomsUpdate("fever")}, now)
	rec.Apply([]FieldUpdate{SymptomsUpdate("fever")}, now)
	rec.Apply([]FieldUpdate{SymptomsUpdate("cough")}, now)

	if rec.Symptoms != "fever. fever. cough" {
		t.Errorf("expected accumulation without dedup, got %q", rec.Symptoms)
	}
}

func TestApplyDateOfBirthRecomputesAge(t *testing.T) {
	// A prior age is overwritten when the date of birth arrives.
	rec := PatientRecord{Age: 99}
	rec.SetDateOfBirth(time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), now)

	if rec.Age != 33 {
		t.Errorf("expected age recomputed to 33, got %d", rec.Age)
	}

	// Via Apply, the dob guard holds but a fresh record takes both.
	fresh := PatientRecord{}
	fresh.Apply([]FieldUpdate{DateOfBirthUpdate(time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC))}, now)
	if fresh.Age != 33 || fresh.DateOfBirth.IsZero() {
		t.Errorf("expected dob update to set both fields, got %+v", fresh)
	}
}

func TestMissingRequiredOrder(t *testing.T) {
	rec := PatientRecord{}
	got := rec.MissingRequired()
	want := []Field{FieldName, FieldAge, FieldGender, FieldMobile, FieldAddress}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	// Either age or date of birth satisfies the combined slot; symptoms never
	// becomes required.
	rec = PatientRecord{DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)}
	for _, f := range rec.MissingRequired() {
		if f == FieldAge || f == FieldSymptoms {
			t.Errorf("unexpected missing field %q", f)
		}
	}
}

func TestCompleteAndFilledFields(t *testing.T) {
	rec := PatientRecord{
		Name:    "Alice Smith",
		Age:     45,
		Gender:  GenderFemale,
		Mobile:  "9876543210",
		Address: "Hyderabad",
	}
	if !rec.Complete() {
		t.Errorf("record should be complete without symptoms")
	}
	if got := len(rec.FilledFields()); got != 5 {
		t.Errorf("expected 5 filled form fields, got %d", got)
	}

	rec.Symptoms = "fever"
	if got := len(rec.FilledFields()); got != FormFieldCount {
		t.Errorf("expected all %d form fields filled, got %d", FormFieldCount, got)
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		in   string
		want Gender
		ok   bool
	}{
		{"male", GenderMale, true},
		{" Female ", GenderFemale, true},
		{"other", GenderOther, true},
		{"prefer-not-to-say", GenderPreferNotToSay, true},
		{"banana", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseGender(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseGender(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
