package piiscan

import (
	"reflect"
	"testing"
)

func TestScan_Email(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain address", "contact jane.doe@acme.com please", true},
		{"plus tag", "send to dev+test@example.org", true},
		{"subdomain", "ops@mail.internal.example.co.uk", true},
		{"no address", "what is the capital of France?", false},
		{"at sign without domain", "meet @ noon", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contains(Scan(tt.input), TagEmail)
			if got != tt.want {
				t.Errorf("Scan(%q) email = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScan_Phone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"dashed", "call me at 555-867-5309", true},
		{"parenthesized area code", "call (415) 555-2671 today", true},
		{"country code", "+1 415 555 2671", true},
		{"plain seven digits", "ref 5552671 in the ticket", true},
		{"no digits", "fix this SQL?", false},
		{"short number", "room 42", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contains(Scan(tt.input), TagPhone)
			if got != tt.want {
				t.Errorf("Scan(%q) phone = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScan_Card(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"grouped valid", "my card is 4111 1111 1111 1111 ok?", true},
		{"dashed valid", "4111-1111-1111-1111", true},
		{"ungrouped valid", "use 4111111111111111 for testing", true},
		{"luhn invalid", "number 4111 1111 1111 1112 fails", false},
		{"too short", "1234 5678 9012", false},
		{"no digits", "can you email me?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contains(Scan(tt.input), TagCard)
			if got != tt.want {
				t.Errorf("Scan(%q) card = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScan_Empty(t *testing.T) {
	if flags := Scan(""); len(flags) != 0 {
		t.Errorf("Scan(\"\") = %v, want empty", flags)
	}
	if flags := Scan("How do I center a div?"); len(flags) != 0 {
		t.Errorf("Scan(clean text) = %v, want empty", flags)
	}
}

func TestScan_Idempotent(t *testing.T) {
	input := "email jane.doe@acme.com or call 555-867-5309"
	first := Scan(input)
	second := Scan(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Scan not idempotent: %v vs %v", first, second)
	}
}

func TestScan_MultipleFlags(t *testing.T) {
	input := "email jane.doe@acme.com or call 555-867-5309"
	flags := Scan(input)
	if !contains(flags, TagEmail) || !contains(flags, TagPhone) {
		t.Errorf("Scan(%q) = %v, want email and phone", input, flags)
	}
}

func TestLuhnValid(t *testing.T) {
	tests := []struct {
		digits string
		want   bool
	}{
		{"4111111111111111", true},
		{"4111111111111112", false},
		{"79927398713", true},  // canonical Luhn example
		{"79927398710", false},
	}
	for _, tt := range tests {
		if got := luhnValid(tt.digits); got != tt.want {
			t.Errorf("luhnValid(%s) = %v, want %v", tt.digits, got, tt.want)
		}
	}
}

func TestToolResult(t *testing.T) {
	out, err := ToolResult(`{"text":"reach me at jane.doe@acme.com"}`)
	if err != nil {
		t.Fatalf("ToolResult error: %v", err)
	}
	if out != `["email"]` {
		t.Errorf("ToolResult = %s, want [\"email\"]", out)
	}
}

func TestToolResult_CleanText(t *testing.T) {
	out, err := ToolResult(`{"text":"fix this SQL?"}`)
	if err != nil {
		t.Fatalf("ToolResult error: %v", err)
	}
	if out != `[]` {
		t.Errorf("ToolResult = %s, want []", out)
	}
}

func TestToolResult_BadArguments(t *testing.T) {
	if _, err := ToolResult(`not json`); err == nil {
		t.Error("expected error for malformed arguments")
	}
}

func contains(flags []string, tag string) bool {
	for _, f := range flags {
		if f == tag {
			return true
		}
	}
	return false
}
