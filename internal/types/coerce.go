package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CastError reports a payload value that cannot be converted to the type
// of the attribute it was sent for.
type CastError struct {
	Path  string
	Kind  string
	Value string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cast to %s failed for value %s at path %q", e.Kind, e.Value, e.Path)
}

// StudentFromFields builds a Student from the raw members of a JSON object,
// converting values the way a document schema would:
//
//	name, email: strings as is; numbers and booleans as their text
//	age:         numbers as is; numeric strings and booleans converted
//
// null leaves an attribute unset, and so does "" for age. Values that
// cannot be converted, such as objects, arrays or non-numeric text for age,
// yield a *CastError.
// Members other than the three attributes are ignored, "_id" included.
func StudentFromFields(fields map[string]json.RawMessage) (Student, error) {
	var (
		s   Student
		err error
	)

	if s.Name, err = castString("name", fields["name"]); err != nil {
		return Student{}, err
	}
	if s.Email, err = castString("email", fields["email"]); err != nil {
		return Student{}, err
	}
	if s.Age, err = castNumber("age", fields["age"]); err != nil {
		return Student{}, err
	}

	return s, nil
}

func castString(path string, raw json.RawMessage) (*string, error) {
	var v any
	if err := decodeValue(raw, &v); err != nil || v == nil {
		return nil, err
	}

	switch val := v.(type) {
	case string:
		return &val, nil
	case bool:
		s := strconv.FormatBool(val)
		return &s, nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return nil, &CastError{Path: path, Kind: "string", Value: string(raw)}
		}
		s := formatNumber(f)
		return &s, nil
	default:
		return nil, &CastError{Path: path, Kind: "string", Value: string(raw)}
	}
}

func castNumber(path string, raw json.RawMessage) (*float64, error) {
	var v any
	if err := decodeValue(raw, &v); err != nil || v == nil {
		return nil, err
	}

	var f float64
	switch val := v.(type) {
	case json.Number:
		n, err := val.Float64()
		if err != nil {
			return nil, &CastError{Path: path, Kind: "number", Value: string(raw)}
		}
		f = n
	case bool:
		if val {
			f = 1
		}
	case string:
		text := strings.TrimSpace(val)
		if text == "" {
			return nil, nil
		}
		n, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return nil, &CastError{Path: path, Kind: "number", Value: string(raw)}
		}
		f = n
	default:
		return nil, &CastError{Path: path, Kind: "number", Value: string(raw)}
	}

	return &f, nil
}

// decodeValue leaves v nil for an absent member.
func decodeValue(raw json.RawMessage, v *any) error {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

// formatNumber renders f as its shortest decimal text, in exponent form
// only for very large or very small magnitudes: 42, 1.5, 1e+21.
func formatNumber(f float64) string {
	if abs := math.Abs(f); abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		s := strconv.FormatFloat(f, 'g', -1, 64)
		return strings.NewReplacer("e+0", "e+", "e-0", "e-").Replace(s)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
