package dto

import (
	"encoding/json"
	"strings"
)

// Scalar is a loosely typed request field. JSON strings, numbers and
// booleans all decode to their textual form, so the same validation rules
// apply to JSON bodies and form submissions alike.
type Scalar string

// UnmarshalJSON accepts any JSON scalar and keeps its textual value.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = Scalar(str)
		return nil
	}
	*s = Scalar(data)
	return nil
}

func (s Scalar) String() string {
	return string(s)
}

// Trimmed returns the value with surrounding whitespace removed.
func (s Scalar) Trimmed() string {
	return strings.TrimSpace(string(s))
}

// Empty reports whether the field is absent or blank.
func (s Scalar) Empty() bool {
	return s.Trimmed() == ""
}
