package engine

import "regexp"

// ---------------------------------------------------------------------------
// Package-level compiled rules. Each field owns an ordered list; the first
// pattern that matches AND validates wins and extraction for that field stops.
// ---------------------------------------------------------------------------

// Name rules, tried against the original-case utterance. The first leans on
// cue words, the later two on capitalization heuristics.
var nameRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:my name is|i'm|i am|call me|this is|name)\s+([a-zA-Z][a-zA-Z\s]*?)(?:\s+(?:and|i am|i'm|my|age|\d|years|born|gender)|$|\.|,)`),
	regexp.MustCompile(`(?i)(?:^|hello|hi)\s*,?\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*?)(?:\s+(?:and|here|speaking|i am|i'm|my|age|\d|years))`),
	regexp.MustCompile(`(?:^|\s)([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2})(?:\s+(?:and|i|my|age|\d|years|born))`),
}

// Filler words stripped from a captured name before validation. "rune" is the
// assistant's own name and shows up in speech transcripts.
var nameFillerRE = regexp.MustCompile(`(?i)\b(hi|hello|room|rune)\b`)

var nameAllowedRE = regexp.MustCompile(`^[a-zA-Z\s]+$`)

var spaceRunRE = regexp.MustCompile(`\s+`)

// Date-of-birth rules, tried against the lowercased utterance. Numeric form
// first (separator order decided by config), then month-name forms.
var dobNumericRE = regexp.MustCompile(`(?:born(?:\s+on)?|birth(?:\s+(?:date|is))?|date of birth)\s+(?:is\s+)?(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)

var dobMonthNameRules = []*regexp.Regexp{
	// "born on 15 june 1990", "birth date is 3rd of march 1985"
	regexp.MustCompile(`(?:born(?:\s+on)?|birth(?:\s+(?:date|is))?|date of birth)\s+(?:is\s+)?(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{4})`),
	// "born on june 15, 1990"
	regexp.MustCompile(`(?:born(?:\s+on)?|birth(?:\s+(?:date|is))?|date of birth)\s+(?:is\s+)?(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})`),
}

var monthsByName = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

// Age rules, tried against the lowercased utterance.
var ageRules = []*regexp.Regexp{
	regexp.MustCompile(`(?:i'm|i am|age(?:\s+is)?)\s+(\d+)(?:\s+years?\s+old)?`),
	regexp.MustCompile(`(\d+)\s+years?\s+old`),
	regexp.MustCompile(`age\s*:?\s*(\d+)`),
}

// Gender rules, tried against the lowercased utterance: cue-word form, then
// a bare standalone word.
var genderRules = []*regexp.Regexp{
	regexp.MustCompile(`(?:gender(?:\s+is)?|i am|i'm)\s+(male|female|man|woman|boy|girl)`),
	regexp.MustCompile(`(?:^|\s)(male|female|man|woman|boy|girl)(?:\s|$)`),
}

// Mobile rules, tried against the original utterance: cue-word form capturing
// a digit-like run, then a bare grouped digit run.
var mobileRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:mobile|phone|number|contact)(?:\s+(?:is|number))?\s*:?\s*([0-9()\s+-]{8,15})`),
	regexp.MustCompile(`(\d{3,4}[\s-]?\d{3,4}[\s-]?\d{3,4})`),
}

var nonDigitRE = regexp.MustCompile(`\D`)

// Address cue rule: captures up to a stop word.
var addressCueRE = regexp.MustCompile(`(?i)(?:live(?:\s+in)?|address(?:\s+is)?|from)\s+([a-zA-Z\s,]+?)(?:\s+(?:my|and|i|symptoms|mobile|phone)|$)`)

// Known city names for the bare-mention address rule. Extended via config.
var knownCities = []string{
	"gachibowli", "hyderabad", "bangalore", "mumbai",
	"delhi", "chennai", "kolkata", "pune",
}

// Symptoms: an explicit cue rule, else the whole utterance when it mentions
// any known symptom keyword.
var symptomsCueRE = regexp.MustCompile(`(?i)(?:symptoms?(?:\s+are)?|suffering from|having|feel|feeling)\s+(.+?)(?:\s+(?:and|my|i|mobile|phone|address)|$)`)

var symptomKeywords = []string{
	"pain", "hurt", "ache", "fever", "cough", "headache", "nausea", "dizzy",
	"tired", "sick", "cold", "flu", "sore throat", "stomach", "breathing",
	"fatigue", "weakness", "vomiting",
}
