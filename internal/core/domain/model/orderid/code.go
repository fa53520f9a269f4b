package orderid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

const (
	// Prefix starts every permanent order code.
	Prefix = "RKR"

	placeholderPrefix = "TMP-"
	minDigits         = 3
)

var (
	codePattern   = regexp.MustCompile(`(?i)^` + Prefix + `(\d+)$`)
	latestPattern = regexp.MustCompile(`(?i)` + Prefix + `(\d+)`)
)

// Code is an order code: either a permanent RKR### code or a placeholder given to
// customer orders until they are accepted.
type Code struct {
	value string
}

// FromNumber formats n as RKR followed by at least three digits.
func FromNumber(n uint64) Code {
	return Code{value: fmt.Sprintf("%s%0*d", Prefix, minDigits, n)}
}

// NewPlaceholder returns a unique temporary code.
func NewPlaceholder() Code {
	return Code{value: placeholderPrefix + kernel.NewUUID().String()}
}

// Parse restores a stored or user supplied code. Permanent codes are normalized to the
// upper-case prefix.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Code{}, errs.NewValueIsRequiredError("order code")
	}
	if strings.HasPrefix(s, placeholderPrefix) {
		return Code{value: s}, nil
	}
	n, ok := number(codePattern, s)
	if !ok {
		return Code{}, errs.NewValueIsInvalidErrorWithCause(
			"order code is invalid",
			fmt.Errorf("%q does not match %s<digits>", s, Prefix),
		)
	}
	return FromNumber(n), nil
}

func (c Code) String() string {
	return c.value
}

func (c Code) IsZero() bool {
	return c.value == ""
}

// IsPlaceholder reports whether the order still waits for its permanent code.
func (c Code) IsPlaceholder() bool {
	return strings.HasPrefix(c.value, placeholderPrefix)
}

// Number returns the counter of a permanent code.
func (c Code) Number() (uint64, bool) {
	if c.IsPlaceholder() {
		return 0, false
	}
	return number(codePattern, c.value)
}

func (c Code) Validate() error {
	if c.IsZero() {
		return errs.NewValueIsRequiredError("order code")
	}
	return nil
}

func number(pattern *regexp.Regexp, s string) (uint64, bool) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
