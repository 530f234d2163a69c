package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DecodeObject decodes a JSON object, keeping numbers as json.Number so they
// re-encode exactly as received.
func DecodeObject(data []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var obj map[string]interface{}
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("failed to decode json object: %w", err)
	}
	if obj == nil {
		return nil, fmt.Errorf("json body is not an object")
	}
	return obj, nil
}

// DecodeArray reports whether raw holds a JSON array and returns its elements.
// A missing value or null is not an array.
func DecodeArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, true
}

// FactorNames extracts factor labels from array elements. String elements are
// used as-is; objects contribute their "name" or "factor" string. Anything
// else is skipped.
func FactorNames(items []json.RawMessage) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				names = append(names, s)
			}
			continue
		}

		var obj struct {
			Name   string `json:"name"`
			Factor string `json:"factor"`
		}
		if err := json.Unmarshal(item, &obj); err == nil {
			switch {
			case strings.TrimSpace(obj.Name) != "":
				names = append(names, strings.TrimSpace(obj.Name))
			case strings.TrimSpace(obj.Factor) != "":
				names = append(names, strings.TrimSpace(obj.Factor))
			}
		}
	}
	return names
}

// IsMissing reports whether a survey value counts as not answered:
// absent, null or the empty string.
func IsMissing(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}
	return false
}

// MissingFields returns the required fields that are not answered, in
// RequiredFields order. The result is never nil.
func MissingFields(answers map[string]interface{}) []string {
	missing := []string{}
	for _, field := range RequiredFields {
		if IsMissing(answers[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

// HasAnyRequiredField reports whether at least one required field is answered.
func HasAnyRequiredField(answers map[string]interface{}) bool {
	for _, field := range RequiredFields {
		if !IsMissing(answers[field]) {
			return true
		}
	}
	return false
}

// ToNumber interprets a survey value as a number.
func ToNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// ToBool interprets a survey value as yes/no.
func ToBool(v interface{}) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case json.Number:
		f, err := b.Float64()
		return f != 0, err == nil
	case float64:
		return b != 0, true
	case int:
		return b != 0, true
	case string:
		return ParseYesNo(b)
	}
	return false, false
}

// ParseYesNo interprets free-text yes/no answers.
func ParseYesNo(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1", "smoker", "daily", "occasionally", "sometimes", "current":
		return true, true
	case "no", "n", "false", "0", "never", "non-smoker", "nonsmoker", "none", "former", "quit":
		return false, true
	}
	return false, false
}

// ToText interprets a survey value as lower-case free text.
func ToText(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s, s != ""
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	}
	return "", false
}
