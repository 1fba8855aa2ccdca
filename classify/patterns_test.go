package classify

import "testing"

func TestHasListMarker(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"- dash bullet", true},
		{"• round bullet", true},
		{"* star bullet", true},
		{"1. numbered", true},
		{"23) numbered with paren", true},
		{"a) lettered", true},
		{"B. lettered upper", true},
		{"  - indented bullet", true},
		{"plain text", false},
		{"-joined dash", false},
		{"3.14 is not a list", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasListMarker(tt.text); got != tt.want {
			t.Errorf("HasListMarker(%q): expected %v, got %v", tt.text, tt.want, got)
		}
	}
}

func TestIsCaptionText(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Figure 1: system overview", true},
		{"figure 2 shows the layout", true},
		{"Fig. 3 detail", true},
		{"Table 12. Quarterly results", true},
		{"Chart 4", true},
		{"Diagram 7: wiring", true},
		{"  Photo 1 of the site", true},
		{"Figures are listed in the appendix", false},
		{"The table has four legs", false},
		{"Configure 1 more host", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsCaptionText(tt.text); got != tt.want {
			t.Errorf("IsCaptionText(%q): expected %v, got %v", tt.text, tt.want, got)
		}
	}
}

func TestIsTitleCase(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Annual Report", true},
		{"Results And Outlook", true},
		{"Section 4 Overview", true},
		{"Annual report", false},
		{"lowercase start", false},
		{"1234 5678", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isTitleCase(tt.text); got != tt.want {
			t.Errorf("isTitleCase(%q): expected %v, got %v", tt.text, tt.want, got)
		}
	}
}
