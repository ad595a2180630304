// =============================================================================
// TOON to JSON Converter - Scalar Values
// =============================================================================
//
// This file defines the typed scalar union used for all parsed cell values,
// plus the coercion rules that turn a raw text token into a Scalar.
//
// COERCION ORDER (applied to the RAW token, quotes included):
//   1. "true" / "false"  -> boolean (exact, case-sensitive)
//   2. "null"            -> null
//   3. strict float parse -> number
//   4. whole-token double-quote wrap -> quote-stripped string
//   5. anything else     -> string, unchanged
//
// The order is load-bearing: quote stripping happens only in rule 4, after
// the boolean/null/number fast paths have already run on the raw token. A
// quoted token like `"null"` therefore stays the literal string `null`
// instead of becoming a null value. Do not un-quote before coercing.
//
// =============================================================================

package toon

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// =============================================================================
// SCALAR TYPE
// =============================================================================

// Kind identifies which arm of the scalar union a value holds.
type Kind int

const (
	// KindString is a plain or quote-stripped string value.
	KindString Kind = iota

	// KindNumber is an IEEE-754 double.
	KindNumber

	// KindBool is a boolean.
	KindBool

	// KindNull is the null literal.
	KindNull
)

// Scalar is one parsed cell value: number, boolean, null, or string.
// The zero value is the empty string.
type Scalar struct {
	kind Kind
	num  float64
	b    bool
	str  string
}

// Str creates a string Scalar.
func Str(s string) Scalar { return Scalar{kind: KindString, str: s} }

// Number creates a numeric Scalar.
func Number(f float64) Scalar { return Scalar{kind: KindNumber, num: f} }

// Bool creates a boolean Scalar.
func Bool(b bool) Scalar { return Scalar{kind: KindBool, b: b} }

// Null creates a null Scalar.
func Null() Scalar { return Scalar{kind: KindNull} }

// Kind returns which arm of the union the value holds.
func (s Scalar) Kind() Kind { return s.kind }

// IsNull reports whether the value is null.
func (s Scalar) IsNull() bool { return s.kind == KindNull }

// AsFloat returns the numeric value. It is 0 for non-number kinds.
func (s Scalar) AsFloat() float64 { return s.num }

// AsBool returns the boolean value. It is false for non-bool kinds.
func (s Scalar) AsBool() bool { return s.b }

// AsStr returns the string value. It is "" for non-string kinds.
func (s Scalar) AsStr() string { return s.str }

// String renders the value for logs and the inspect command.
func (s Scalar) String() string {
	switch s.kind {
	case KindNumber:
		return strconv.FormatFloat(s.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(s.b)
	case KindNull:
		return "null"
	default:
		return s.str
	}
}

// MarshalJSON encodes the scalar as the matching JSON type.
func (s Scalar) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case KindNumber:
		return json.Marshal(s.num)
	case KindBool:
		return json.Marshal(s.b)
	case KindNull:
		return []byte("null"), nil
	default:
		return json.Marshal(s.str)
	}
}

// =============================================================================
// COERCION
// =============================================================================

// numberPattern is the numeric-literal grammar: optional sign, digits,
// optional decimal point, optional exponent. strconv.ParseFloat alone is
// wider than the format (it accepts NaN/Inf spellings, hex floats, and
// underscore separators); tokens outside this pattern are strings. The
// pattern also keeps every coerced number JSON-encodable.
var numberPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// Coerce converts one textual token into a typed Scalar using the rule
// order documented at the top of this file.
//
// The empty token (a row with fewer values than fields) coerces to the
// empty STRING, never to the number 0: the strict numeric parse rejects
// "" and the token falls through to rule 5. This is a deliberate,
// documented decision and is pinned by TestCoerceEmptyToken.
func Coerce(token string) Scalar {
	// Rule 1 and 2: exact keyword matches on the raw token.
	switch token {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	case "null":
		return Null()
	}

	// Rule 3: strict full-token numeric parse, gated on the numeric
	// grammar. The pattern rejects the empty string, trailing garbage,
	// and ParseFloat's extra spellings; the error check additionally
	// catches overflow to infinity (e.g. "1e999").
	if numberPattern.MatchString(token) {
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return Number(f)
		}
	}

	// Rule 4: a single pair of double quotes spanning the whole token.
	// The quotes are stripped; interior characters are NOT un-escaped.
	if len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"' {
		return Str(token[1 : len(token)-1])
	}

	// Rule 5: everything else is a string, unchanged.
	return Str(token)
}
