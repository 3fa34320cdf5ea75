package engine

import (
	"strconv"
	"strings"
	"time"

	"github.com/runehealth/rune_backend/internal/intake"
)

// extractName tries the ordered name rules against the original-case
// utterance. A captured phrase is cleaned of filler words, then must be
// 2-50 characters of letters and spaces.
func extractName(msg string) (string, bool) {
	for _, re := range nameRules {
		m := re.FindStringSubmatch(msg)
		if m == nil || m[1] == "" {
			continue
		}
		name := cleanName(m[1])
		if len(name) >= 2 && len(name) <= 50 && nameAllowedRE.MatchString(name) {
			return name, true
		}
	}
	return "", false
}

func cleanName(name string) string {
	name = nameFillerRE.ReplaceAllString(name, "")
	name = spaceRunRE.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// extractDateOfBirth tries the numeric rule, then the month-name forms.
// A candidate must be a real calendar date strictly between 1900-01-01 and
// now; impossible dates (31/02/...) are rejected like any other failed
// validation.
func (e *Engine) extractDateOfBirth(lower string, now time.Time) (time.Time, bool) {
	if m := dobNumericRE.FindStringSubmatch(lower); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		day, month := a, b
		if e.dateOrder == MonthFirst {
			day, month = b, a
		}
		if dob, ok := makeDate(year, month, day, now); ok {
			return dob, true
		}
	}

	for i, re := range dobMonthNameRules {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		var day, month, year int
		if i == 0 {
			day, _ = strconv.Atoi(m[1])
			month = monthsByName[m[2]]
			year, _ = strconv.Atoi(m[3])
		} else {
			month = monthsByName[m[1]]
			day, _ = strconv.Atoi(m[2])
			year, _ = strconv.Atoi(m[3])
		}
		if dob, ok := makeDate(year, month, day, now); ok {
			return dob, true
		}
	}

	return time.Time{}, false
}

// makeDate builds a calendar date and rejects rollover (Feb 31 becoming
// Mar 3) as well as dates outside (1900-01-01, now).
func makeDate(year, month, day int, now time.Time) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	floor := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	if !d.After(floor) || !d.Before(now) {
		return time.Time{}, false
	}
	return d, true
}

// extractAge tries the ordered numeric rules against the lowercased
// utterance. Bounds are exclusive: 0 and 150 are both rejected.
func extractAge(lower string) (int, bool) {
	for _, re := range ageRules {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		age, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if age > 0 && age < 150 {
			return age, true
		}
	}
	return 0, false
}

// extractGender matches a cue-word or bare-word gender mention and
// normalizes colloquial forms onto the form's enum.
func extractGender(lower string) (intake.Gender, bool) {
	for _, re := range genderRules {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		switch m[1] {
		case "male", "man", "boy":
			return intake.GenderMale, true
		case "female", "woman", "girl":
			return intake.GenderFemale, true
		}
	}
	return "", false
}

// extractMobile returns both the stripped digit string (the stored value)
// and the raw match (echoed in the narrative). Candidates with fewer than 8
// or more than 15 digits are rejected.
func extractMobile(msg string) (digits, raw string, ok bool) {
	for _, re := range mobileRules {
		m := re.FindStringSubmatch(msg)
		if m == nil {
			continue
		}
		raw = strings.TrimSpace(m[1])
		digits = nonDigitRE.ReplaceAllString(raw, "")
		if len(digits) >= 8 && len(digits) <= 15 {
			return digits, raw, true
		}
	}
	return "", "", false
}

// extractAddress tries the cue-word rule first, then a bare mention of a
// known city.
func (e *Engine) extractAddress(msg string) (string, bool) {
	if m := addressCueRE.FindStringSubmatch(msg); m != nil {
		addr := strings.TrimSpace(m[1])
		if len(addr) > 2 {
			return addr, true
		}
	}
	if m := e.cityRE.FindStringSubmatch(msg); m != nil {
		return m[1], true
	}
	return "", false
}

// extractSymptoms captures the phrase after an explicit symptom cue, or the
// whole utterance when it mentions any known symptom keyword.
func (e *Engine) extractSymptoms(msg, lower string) (string, bool) {
	if m := symptomsCueRE.FindStringSubmatch(msg); m != nil {
		text := strings.TrimSpace(m[1])
		if text != "" {
			return text, true
		}
	}
	for _, kw := range e.symptomKeywords {
		if strings.Contains(lower, kw) {
			return msg, true
		}
	}
	return "", false
}
