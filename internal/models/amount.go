package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrAmountNotFinite = errors.New("amount must be a finite number")

// Amount decodes a JSON number or a numeric string ("12.50"). NaN and
// infinities are rejected so they never reach storage.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var f float64
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("amount %q: %w", s, err)
		}
		f = v
	} else if err := json.Unmarshal(b, &f); err != nil {
		return err
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("amount %s: %w", b, ErrAmountNotFinite)
	}
	*a = Amount(f)
	return nil
}

func (a Amount) Float() float64 { return float64(a) }
