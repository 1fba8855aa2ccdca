package textproc

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{LTR, "LTR"},
		{RTL, "RTL"},
		{Neutral, "Neutral"},
		{Direction(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"empty", "", Neutral},
		{"english", "Hello world", LTR},
		{"hebrew", "שלום עולם", RTL},
		{"arabic", "مرحبا بالعالم", RTL},
		{"digits only", "12345", Neutral},
		{"punctuation only", "?!...", Neutral},
		{"mostly latin with rtl", "The word שלום appears once in this long sentence", LTR},
		{"mostly rtl with latin", "שלום עולם טוב abc", RTL},
		{"cyrillic", "Привет мир", LTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.text); got != tt.want {
				t.Errorf("Expected %v for %q, got %v", tt.want, tt.text, got)
			}
		})
	}
}
