package api

import (
	"encoding/json"
	"math"
	"strconv"
)

// looseNumber decodes a JSON number or a numeric string without failing
// the surrounding decode. Anything else (null, objects, non-numeric
// strings) leaves ok false, so the handler can reject it with the proper
// error code instead of a generic decode failure.
type looseNumber struct {
	value float64
	ok    bool
}

func (n *looseNumber) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		n.value, n.ok = t, true
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			n.value, n.ok = f, true
		}
	}
	return nil
}

// asInt64 returns the value as an integer id, or false when the number was
// missing, non-numeric or not integral.
func (n looseNumber) asInt64() (int64, bool) {
	if !n.ok || n.value != math.Trunc(n.value) || n.value < math.MinInt64 || n.value > math.MaxInt64 {
		return 0, false
	}
	return int64(n.value), true
}
