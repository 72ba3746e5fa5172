package filters

import (
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-forms/internal/coerce"
)

// Built-in filter names understood by Defaults and the declarative builders.
const (
	Trim      = "trim"
	Lower     = "lower"
	Upper     = "upper"
	StripTags = "striptags"
	Email     = "email"
	AlphaNum  = "alphanum"
	Int       = "int"
	Float     = "float"
	AbsInt    = "absint"
)

// Defaults returns a registry with every built-in filter registered.
func Defaults() *Registry {
	r := NewRegistry()
	r.MustRegister(Trim, trimFilter)
	r.MustRegister(Lower, lowerFilter)
	r.MustRegister(Upper, upperFilter)
	r.MustRegister(StripTags, stripTagsFilter)
	r.MustRegister(Email, emailFilter)
	r.MustRegister(AlphaNum, alphaNumFilter)
	r.MustRegister(Int, intFilter)
	r.MustRegister(Float, floatFilter)
	r.MustRegister(AbsInt, absIntFilter)
	return r
}

func trimFilter(value any) (any, error) {
	return strings.TrimSpace(coerce.ToString(value)), nil
}

func lowerFilter(value any) (any, error) {
	return strings.ToLower(coerce.ToString(value)), nil
}

func upperFilter(value any) (any, error) {
	return strings.ToUpper(coerce.ToString(value)), nil
}

var (
	stripOnce   sync.Once
	stripPolicy *bluemonday.Policy
)

func strictPolicy() *bluemonday.Policy {
	stripOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}

func stripTagsFilter(value any) (any, error) {
	return strictPolicy().Sanitize(coerce.ToString(value)), nil
}

// emailSafe lists the non-alphanumeric characters an address may keep.
const emailSafe = "!#$%&'*+-/=?^_`{|}~@.[]"

func emailFilter(value any) (any, error) {
	var sb strings.Builder
	for _, r := range coerce.ToString(value) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(emailSafe, r) {
			sb.WriteRune(r)
		}
	}
	return sb.String(), nil
}

func alphaNumFilter(value any) (any, error) {
	var sb strings.Builder
	for _, r := range coerce.ToString(value) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String(), nil
}

func intFilter(value any) (any, error) {
	return sanitizedInt(value), nil
}

func absIntFilter(value any) (any, error) {
	n := sanitizedInt(value)
	if n < 0 {
		n = -n
	}
	return n, nil
}

// sanitizedInt keeps digits and signs, then parses. Unparseable input
// becomes zero.
func sanitizedInt(value any) int64 {
	var sb strings.Builder
	for _, r := range coerce.ToString(value) {
		if (r >= '0' && r <= '9') || r == '+' || r == '-' {
			sb.WriteRune(r)
		}
	}
	n, err := strconv.ParseInt(sb.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func floatFilter(value any) (any, error) {
	var sb strings.Builder
	for _, r := range coerce.ToString(value) {
		if (r >= '0' && r <= '9') || r == '+' || r == '-' || r == '.' {
			sb.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return float64(0), nil
	}
	return f, nil
}
