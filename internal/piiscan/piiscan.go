package piiscan

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Flag tags returned by Scan. These are the deterministic half of the
// review flag vocabulary; the generation step may add advisory tags on top.
const (
	TagEmail = "email"
	TagPhone = "phone"
	TagCard  = "card-ish"
)

var (
	// Email-like tokens: local-part@domain with at least one dot in the domain.
	emailPattern = regexp.MustCompile(`\b[\w.+-]+@[\w-]+(?:\.[\w-]+)+\b`)
	// Phone-like digit runs: optional country code, optional area code, with
	// common separators.
	phonePattern = regexp.MustCompile(`\b(?:\+?\d{1,3}[-.\s]?)?(?:\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}\b`)
	// Card-like digit runs: 13-19 digits, optionally grouped by spaces or
	// dashes. Matches are confirmed with a Luhn pass before flagging.
	cardPattern = regexp.MustCompile(`\b(?:\d[ -]?){12,18}\d\b`)

	nonDigit = regexp.MustCompile(`\D`)
)

// Scan returns the PII flags detected in text. It is a pure function: no
// side effects, identical output for identical input, and an empty result
// (never an error) when nothing matches. Flags are returned in stable order
// with no duplicates.
func Scan(text string) []string {
	var flags []string
	if emailPattern.MatchString(text) {
		flags = append(flags, TagEmail)
	}
	if phonePattern.MatchString(text) {
		flags = append(flags, TagPhone)
	}
	if hasCardLike(text) {
		flags = append(flags, TagCard)
	}
	return flags
}

func hasCardLike(text string) bool {
	for _, match := range cardPattern.FindAllString(text, -1) {
		digits := nonDigit.ReplaceAllString(match, "")
		if len(digits) < 13 || len(digits) > 19 {
			continue
		}
		if luhnValid(digits) {
			return true
		}
	}
	return false
}

// luhnValid applies the mod-10 weighted checksum used by payment card
// numbers. Cuts false positives on long digit runs that are not card-shaped.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ToolName is the name under which the scanner is exposed to the generation
// step as an invocable tool.
const ToolName = "pii_scan"

// ToolDescription documents the tool for the generation step.
const ToolDescription = "Scan text for PII patterns. Returns a JSON array of flags drawn from: email, phone, card-ish. Returns [] when nothing is found."

// ToolParameters is the JSON Schema for the tool's arguments.
func ToolParameters() json.RawMessage {
	return json.RawMessage(`{"type":"object","properties":{"text":{"type":"string","description":"The text to scan"}},"required":["text"]}`)
}

// ToolResult runs the scanner on the text named in a tool-call argument
// payload and returns the JSON-encoded flag list. A payload that is not an
// object with a string "text" field is an error; the scanner itself cannot
// fail.
func ToolResult(arguments string) (string, error) {
	var args struct {
		Text string `json:"text"`
	}
	dec := json.NewDecoder(strings.NewReader(arguments))
	if err := dec.Decode(&args); err != nil {
		return "", err
	}
	flags := Scan(args.Text)
	if flags == nil {
		flags = []string{}
	}
	out, err := json.Marshal(flags)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
