package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NullableInt decodes a JSON field that clients send either as a number or
// as the raw string from a form input. Unparseable or missing values decode
// to nil rather than failing the whole request.
type NullableInt struct {
	Value *int
}

func (n *NullableInt) UnmarshalJSON(data []byte) error {
	n.Value = nil

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil {
			n.Value = &parsed
		}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		parsed := int(f)
		n.Value = &parsed
	}
	return nil
}

func (n NullableInt) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
