// Package phone normalizes user-supplied mobile numbers for storage.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Normalize parses raw into E.164 form using defaultRegion for numbers
// without a country prefix. When the number cannot be parsed or is not
// valid for the region, it falls back to the bare digit run so the
// caller never loses what the user typed.
func Normalize(raw, defaultRegion string) string {
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err == nil && phonenumbers.IsValidNumber(num) {
		return phonenumbers.Format(num, phonenumbers.E164)
	}
	return Digits(raw)
}

// Digits strips everything but digits from raw.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
