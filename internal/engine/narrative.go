package engine

import (
	"strings"

	"github.com/runehealth/rune_backend/internal/intake"
)

// Greeting is the assistant's opening message for a fresh session.
const Greeting = "Hello! I'm Rune, your AI medical assistant. I'll help you fill out " +
	"your medical information form. You can speak naturally, and I'll extract the " +
	"relevant information automatically. Please tell me about yourself and your " +
	"medical concerns."

// missingLabels maps required fields to how the follow-up prompt names them.
var missingLabels = map[intake.Field]string{
	intake.FieldName:    "your name",
	intake.FieldAge:     "your age or date of birth",
	intake.FieldGender:  "your gender",
	intake.FieldMobile:  "your mobile number",
	intake.FieldAddress: "your address",
}

// buildNarrative assembles the assistant reply: what was extracted this
// call, then either the missing-field prompt or the completion message.
func buildNarrative(extracted []string, missing []intake.Field) string {
	var b strings.Builder

	if len(extracted) > 0 {
		b.WriteString("Great! I've extracted and updated the following information: ")
		b.WriteString(strings.Join(extracted, ", "))
		b.WriteString(". ")
	} else {
		b.WriteString("I heard what you said, but couldn't extract specific form information from it. ")
	}

	if len(missing) > 0 {
		labels := make([]string, len(missing))
		for i, f := range missing {
			labels[i] = missingLabels[f]
		}
		b.WriteString("I still need ")
		b.WriteString(strings.Join(labels, ", "))
		b.WriteString(". Could you please provide this information?")
	} else {
		b.WriteString("Perfect! Your form is now complete. Is there anything else you'd like to add or modify?")
	}

	return b.String()
}
