package errors

import (
	"math"
	"unicode"
)

// ValidateEventID validates an event identifier for safety.
// IDs end up in file paths (bookmark store) and URLs, so the rules are
// intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateEventID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "event id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "event id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "event id contains control characters")
		}
		if r == '/' || r == '\\' {
			return New(ErrCodeInvalidInput, "event id cannot contain path separators")
		}
	}

	return nil
}

// ValidateAnchor rejects non-finite anchor coordinates. Anchors may lie
// outside the viewport (panned-off markers are clamped back by placement),
// but NaN or infinite values would poison every downstream computation.
func ValidateAnchor(x, y float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return New(ErrCodeInvalidInput, "anchor coordinates must be finite, got (%g, %g)", x, y)
	}
	return nil
}
