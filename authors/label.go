package authors

import (
	"math"
	"strconv"
	"strings"
)

// Label is the tri-state English-speaker classification of an author.
// Unknown is the zero value; the legacy integer encoding (1/0/-1) exists
// only at the serialization boundary.
type Label int

const (
	Unknown Label = iota
	NonEnglishSpeaking
	EnglishSpeaking
)

// Int returns the legacy persisted encoding.
func (l Label) Int() int {
	switch l {
	case EnglishSpeaking:
		return 1
	case NonEnglishSpeaking:
		return 0
	default:
		return -1
	}
}

// String returns the persisted integer form.
func (l Label) String() string {
	return strconv.Itoa(l.Int())
}

// Valid reports whether the label is a definite classification (0 or 1 in
// the legacy encoding).
func (l Label) Valid() bool {
	return l == NonEnglishSpeaking || l == EnglishSpeaking
}

// ParseLabel coerces a stored label value. The value is parsed numerically
// and truncated toward zero; anything non-numeric, NaN, or outside
// {-1, 0, 1} becomes Unknown.
func ParseLabel(raw string) Label {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Unknown
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) {
		return Unknown
	}

	switch int(f) {
	case 1:
		return EnglishSpeaking
	case 0:
		return NonEnglishSpeaking
	case -1:
		return Unknown
	default:
		return Unknown
	}
}
