package settings

import (
	"strconv"
	"strings"
)

// Kind identifies the semantic type a raw value normalized to.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
)

// Value is a settings value normalized at read time. The game writes flags
// interchangeably as 1, "1", yes, or true; normalizing here keeps callers
// out of the type-guessing business.
type Value struct {
	raw  string
	kind Kind
	b    bool
	i    int64
}

// ParseValue classifies a raw value string. Surrounding double quotes are
// stripped and force string kind.
func ParseValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) {
		return Value{raw: trimmed[1 : len(trimmed)-1], kind: KindString}
	}
	switch strings.ToLower(trimmed) {
	case "yes", "true":
		return Value{raw: trimmed, kind: KindBool, b: true}
	case "no", "false":
		return Value{raw: trimmed, kind: KindBool}
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Value{raw: trimmed, kind: KindInt, i: i}
	}
	return Value{raw: trimmed, kind: KindString}
}

// Kind returns the normalized type.
func (v Value) Kind() Kind { return v.kind }

// String returns the raw (unquoted) text.
func (v Value) String() string { return v.raw }

// Int returns the integer value when the kind is int.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Bool returns the boolean value when the kind is bool.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Truthy interprets the value as a flag: boolean true, any non-zero integer,
// and the strings "1", "yes", and "true" all count. This deliberately treats
// the integer 1 and the string "1" the same; flags round-trip through
// differently typed writers.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	default:
		switch strings.ToLower(v.raw) {
		case "1", "yes", "true":
			return true
		}
		return false
	}
}
