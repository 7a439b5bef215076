package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// NullFloat64 represents a metric value that may be absent. A missing value is
// not the same as zero: a campaign with zero spend has spend 0, but its ROAS is
// null. The type round-trips through SQL and JSON as NULL/null.
type NullFloat64 struct {
	Float64 float64
	Valid   bool
}

// Null returns an invalid (absent) value.
func Null() NullFloat64 {
	return NullFloat64{}
}

// Float returns a valid value.
func Float(v float64) NullFloat64 {
	return NullFloat64{Float64: v, Valid: true}
}

// SafeDiv divides num by den with null propagation: a zero or absent
// denominator, or an absent numerator, yields null. Never infinity, never a
// conventional zero.
func SafeDiv(num, den NullFloat64) NullFloat64 {
	if !num.Valid || !den.Valid || den.Float64 == 0 {
		return Null()
	}
	return Float(num.Float64 / den.Float64)
}

// SafeGrowth computes the relative change (current - prior) / prior, null when
// the prior value is zero or absent.
func SafeGrowth(current, prior NullFloat64) NullFloat64 {
	if !current.Valid || !prior.Valid || prior.Float64 == 0 {
		return Null()
	}
	return Float((current.Float64 - prior.Float64) / prior.Float64)
}

// SafeSub computes an absolute difference a - b, null when either side is
// absent. Used for benchmark comparison, which is a difference rather than a
// growth rate.
func SafeSub(a, b NullFloat64) NullFloat64 {
	if !a.Valid || !b.Valid {
		return Null()
	}
	return Float(a.Float64 - b.Float64)
}

// MarshalJSON implements json.Marshaler.
func (n NullFloat64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullFloat64) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Null()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Float(v)
	return nil
}

// Scan implements sql.Scanner.
func (n *NullFloat64) Scan(src any) error {
	if src == nil {
		*n = Null()
		return nil
	}
	switch v := src.(type) {
	case float64:
		*n = Float(v)
	case int64:
		*n = Float(float64(v))
	case []byte:
		var f float64
		if _, err := fmt.Sscanf(string(v), "%g", &f); err != nil {
			return fmt.Errorf("cannot scan %q into NullFloat64: %w", string(v), err)
		}
		*n = Float(f)
	default:
		return fmt.Errorf("cannot scan %T into NullFloat64", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (n NullFloat64) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Float64, nil
}
