package imaging

import "fmt"

// Quality selects how aggressively images are compressed and downscaled.
type Quality int

const (
	// QualityLow favors small output, quality 60 within 800x600.
	QualityLow Quality = iota
	// QualityMedium is the default, quality 85 within 1200x900.
	QualityMedium
	// QualityHigh favors fidelity, quality 95 within 1600x1200.
	QualityHigh
)

// String returns the quality's wire name.
func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	default:
		return fmt.Sprintf("quality(%d)", int(q))
	}
}

// ParseQuality converts a wire name back into a Quality.
func ParseQuality(name string) (Quality, error) {
	switch name {
	case "low":
		return QualityLow, nil
	case "medium":
		return QualityMedium, nil
	case "high":
		return QualityHigh, nil
	default:
		return QualityMedium, fmt.Errorf("unknown image quality %q", name)
	}
}

// Settings are the encoding knobs a quality level expands to.
type Settings struct {
	JPEGQuality int
	MaxWidth    int
	MaxHeight   int
}

// Settings returns the knobs for the quality level. Unrecognized levels
// fall back to medium.
func (q Quality) Settings() Settings {
	switch q {
	case QualityLow:
		return Settings{JPEGQuality: 60, MaxWidth: 800, MaxHeight: 600}
	case QualityHigh:
		return Settings{JPEGQuality: 95, MaxWidth: 1600, MaxHeight: 1200}
	default:
		return Settings{JPEGQuality: 85, MaxWidth: 1200, MaxHeight: 900}
	}
}
