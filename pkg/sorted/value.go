package sorted

import (
	"fmt"
	"time"
)

// Kind identifies the runtime type carried by a Value.
type Kind int

const (
	// KindInvalid is the zero Value; it can not be compared.
	KindInvalid Kind = iota
	// KindString values compare with locale-aware collation.
	KindString
	// KindNumber values compare numerically.
	KindNumber
	// KindTime values compare by instant.
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	default:
		return "invalid"
	}
}

// Value is a sortable field value. Exactly one of the payloads is meaningful,
// selected by kind.
type Value struct {
	kind Kind
	str  string
	num  float64
	at   time.Time
}

// String wraps s as a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number wraps n as a number Value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Int wraps n as a number Value.
func Int(n int64) Value { return Number(float64(n)) }

// Time wraps t as a time Value.
func Time(t time.Time) Value { return Value{kind: KindTime, at: t} }

// Kind reports the type held by v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v carries a comparable payload.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) describe() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindTime:
		return v.at.Format(time.RFC3339)
	default:
		return "<invalid>"
	}
}
