package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseJSON decodes the converter's coordinate file: a JSON array of
// {name, color, coords} objects. The array may also be wrapped in a
// script assignment such as `var DATA = [...];`.
func ParseJSON(data []byte) ([]Record, error) {
	body := unwrapScript(data)
	if len(body) == 0 {
		return nil, errors.New("dataset: empty json")
	}
	var raw []rawRecord
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	return convert(raw)
}

// ParseYAML decodes a YAML sequence with the same fields as ParseJSON.
func ParseYAML(data []byte) ([]Record, error) {
	var raw []rawRecord
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	return convert(raw)
}

func convert(raw []rawRecord) ([]Record, error) {
	recs := make([]Record, 0, len(raw))
	for i, r := range raw {
		rec, err := r.record(i)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// unwrapScript strips a leading `<decl> NAME =` and a trailing semicolon.
func unwrapScript(data []byte) []byte {
	s := bytes.TrimSpace(data)
	if len(s) == 0 || s[0] == '[' || s[0] == '{' {
		return s
	}
	if i := bytes.IndexByte(s, '='); i >= 0 {
		s = bytes.TrimSpace(s[i+1:])
	}
	s = bytes.TrimSuffix(s, []byte(";"))
	return bytes.TrimSpace(s)
}

// UnmarshalJSON accepts a number or a color string.
func (c *Color) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		v, err := ParseColor(s)
		if err != nil {
			return err
		}
		*c = v
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil || f < 0 || f > 0xffffff || f != math.Trunc(f) {
		return fmt.Errorf("dataset: bad color %s", b)
	}
	*c = Color(f)
	return nil
}

// UnmarshalYAML accepts an integer or a color string scalar.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("dataset: line %d: color must be a scalar", n.Line)
	}
	v, err := ParseColor(n.Value)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
