package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number, a numeric string, "" or null. HTML forms post numbers as strings.
// The value must be integral and fit in 32 bits; 29.0 and "1e2" are accepted.
// Zero and empty both mean "not given".
type FlexInt struct {
	Value int
	Valid bool
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = FlexInt{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return fmt.Errorf("not an integer: %q", raw)
	}
	// eta is an INTEGER column
	if n < math.MinInt32 || n > math.MaxInt32 {
		return fmt.Errorf("out of range: %q", raw)
	}
	if n != 0 {
		f.Value, f.Valid = int(n), true
	}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

// Ptr returns nil when no value was given.
func (f FlexInt) Ptr() *int {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
