package intake

import "time"

// FieldUpdate is one candidate write produced by the extraction engine:
// a field tag plus the payload slot matching that field's type. Exactly one
// of Text, Number, or Date is meaningful per tag.
type FieldUpdate struct {
	Field  Field     `json:"field"`
	Text   string    `json:"text,omitempty"`
	Number int       `json:"number,omitempty"`
	Date   time.Time `json:"date,omitempty"`
}

func NameUpdate(name string) FieldUpdate {
	return FieldUpdate{Field: FieldName, Text: name}
}

func AgeUpdate(age int) FieldUpdate {
	return FieldUpdate{Field: FieldAge, Number: age}
}

func DateOfBirthUpdate(dob time.Time) FieldUpdate {
	return FieldUpdate{Field: FieldDateOfBirth, Date: dob}
}

func GenderUpdate(g Gender) FieldUpdate {
	return FieldUpdate{Field: FieldGender, Text: string(g)}
}

func MobileUpdate(digits string) FieldUpdate {
	return FieldUpdate{Field: FieldMobile, Text: digits}
}

func AddressUpdate(addr string) FieldUpdate {
	return FieldUpdate{Field: FieldAddress, Text: addr}
}

func SymptomsUpdate(text string) FieldUpdate {
	return FieldUpdate{Field: FieldSymptoms, Text: text}
}
