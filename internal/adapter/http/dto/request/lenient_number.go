package request

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LenientNumber decodes whatever a half-filled form field holds. Numbers and
// numeric strings keep their value; null, "", booleans, objects and text that is
// not a number decode to 0 instead of failing the whole payload.
type LenientNumber float64

func (n *LenientNumber) UnmarshalJSON(b []byte) error {
	*n = 0
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	var v float64
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		v = parsed
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if err := json.Unmarshal(b, &v); err != nil {
			return nil
		}
	default:
		return nil
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*n = LenientNumber(v)
	return nil
}

func (n LenientNumber) Float64() float64 {
	return float64(n)
}
