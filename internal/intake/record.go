package intake

import (
	"strings"
	"time"
)

// Gender is the closed set of values the patient form accepts.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer-not-to-say"
)

// ParseGender validates a form-supplied gender value.
func ParseGender(s string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	case GenderOther:
		return GenderOther, true
	case GenderPreferNotToSay:
		return GenderPreferNotToSay, true
	}
	return "", false
}

// Field names one slot of the patient record.
type Field string

const (
	FieldName        Field = "name"
	FieldAge         Field = "age"
	FieldDateOfBirth Field = "dateOfBirth"
	FieldGender      Field = "gender"
	FieldMobile      Field = "mobile"
	FieldAddress     Field = "address"
	FieldSymptoms    Field = "symptoms"
)

// Fields in fixed extraction order. Symptoms is last and is the only
// accumulator.
var Fields = []Field{
	FieldName, FieldDateOfBirth, FieldAge, FieldGender,
	FieldMobile, FieldAddress, FieldSymptoms,
}

// PatientRecord is the cumulative target of extraction. It is created empty
// at session start and exists only for the session.
//
// Symptoms grows without dedup or cap: repeated identical utterances keep
// appending. That mirrors the form's transcript-log behavior.
type PatientRecord struct {
	Name        string    `json:"name"`
	Age         int       `json:"age,omitempty"`
	DateOfBirth time.Time `json:"dateOfBirth,omitempty"`
	Gender      Gender    `json:"gender,omitempty"`
	Mobile      string    `json:"mobile"`
	Address     string    `json:"address"`
	Symptoms    string    `json:"symptoms"`
}

// Filled reports whether a field holds a usable value: a non-empty trimmed
// string, a positive age, or a valid date.
func (r *PatientRecord) Filled(f Field) bool {
	switch f {
	case FieldName:
		return strings.TrimSpace(r.Name) != ""
	case FieldAge:
		return r.Age > 0
	case FieldDateOfBirth:
		return !r.DateOfBirth.IsZero()
	case FieldGender:
		return r.Gender != ""
	case FieldMobile:
		return strings.TrimSpace(r.Mobile) != ""
	case FieldAddress:
		return strings.TrimSpace(r.Address) != ""
	case FieldSymptoms:
		return strings.TrimSpace(r.Symptoms) != ""
	}
	return false
}

// FilledFields returns the set of filled form fields. Age and date of birth
// count as one form slot (age), matching the six-field intake form.
func (r *PatientRecord) FilledFields() []Field {
	var out []Field
	for _, f := range []Field{FieldName, FieldAge, FieldGender, FieldMobile, FieldAddress, FieldSymptoms} {
		if r.Filled(f) || (f == FieldAge && r.Filled(FieldDateOfBirth)) {
			out = append(out, f)
		}
	}
	return out
}

// FormFieldCount is the number of slots on the patient form.
const FormFieldCount = 6

// MissingRequired lists the required fields still absent, in prompt order.
// Age and date of birth satisfy each other; symptoms is never required.
func (r *PatientRecord) MissingRequired() []Field {
	var missing []Field
	if !r.Filled(FieldName) {
		missing = append(missing, FieldName)
	}
	if !r.Filled(FieldAge) && !r.Filled(FieldDateOfBirth) {
		missing = append(missing, FieldAge)
	}
	if !r.Filled(FieldGender) {
		missing = append(missing, FieldGender)
	}
	if !r.Filled(FieldMobile) {
		missing = append(missing, FieldMobile)
	}
	if !r.Filled(FieldAddress) {
		missing = append(missing, FieldAddress)
	}
	return missing
}

// Complete reports whether every required field is filled.
func (r *PatientRecord) Complete() bool {
	return len(r.MissingRequired()) == 0
}

// AgeOn computes a calendar-aware age: the year difference, minus one when
// the current month/day precedes the birth month/day.
func AgeOn(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// SetDateOfBirth writes the date of birth and recomputes age, overwriting
// any prior age. The age/date invariant holds for extraction and direct
// edits alike.
func (r *PatientRecord) SetDateOfBirth(dob, now time.Time) {
	r.DateOfBirth = dob
	r.Age = AgeOn(dob, now)
}

// Apply merges engine updates into the record under the write policy:
// every field except symptoms is written at most once while non-empty, and
// symptoms always appends. A date-of-birth update also recomputes age
// unconditionally. Returns the updates that actually landed.
func (r *PatientRecord) Apply(updates []FieldUpdate, now time.Time) []FieldUpdate {
	var applied []FieldUpdate
	for _, u := range updates {
		switch u.Field {
		case FieldName:
			if r.Filled(FieldName) {
				continue
			}
			r.Name = u.Text
		case FieldAge:
			if r.Filled(FieldAge) {
				continue
			}
			r.Age = u.Number
		case FieldDateOfBirth:
			if r.Filled(FieldDateOfBirth) {
				continue
			}
			r.SetDateOfBirth(u.Date, now)
		case FieldGender:
			if r.Filled(FieldGender) {
				continue
			}
			r.Gender = Gender(u.Text)
		case FieldMobile:
			if r.Filled(FieldMobile) {
				continue
			}
			r.Mobile = u.Text
		case FieldAddress:
			if r.Filled(FieldAddress) {
				continue
			}
			r.Address = u.Text
		case FieldSymptoms:
			// Always appends, never guarded.
			if r.Symptoms != "" {
				r.Symptoms = r.Symptoms + ". " + u.Text
			} else {
				r.Symptoms = u.Text
			}
		default:
			continue
		}
		applied = append(applied, u)
	}
	return applied
}
