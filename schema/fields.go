// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Built-in field constructors. Each returns a fresh immutable template, so
// schemas never share per-field state. Constructors panic only on programmer
// error (empty kind set), which cannot happen here.

const (
	dateLayout   = "02.01.2006"
	maxAgeYears  = 70
	phoneDigits  = 11
	phonePrefix  = '7'
	genderOption = 2
)

var dateRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// Char accepts any string.
func Char(required, nullable bool) *Field {
	return mustField([]Kind{String}, required, nullable, nil)
}

// Email accepts a string containing "@".
func Email(required, nullable bool) *Field {
	return mustField([]Kind{String}, required, nullable, func(v any) error {
		if !strings.Contains(v.(string), "@") {
			return errors.New("must contain @")
		}
		return nil
	})
}

// Arguments accepts any JSON object.
func Arguments(required, nullable bool) *Field {
	return mustField([]Kind{Map}, required, nullable, nil)
}

// Phone accepts a string or integer that renders as an 11-digit decimal
// number starting with 7.
func Phone(required, nullable bool) *Field {
	return mustField([]Kind{String, Int}, required, nullable, func(v any) error {
		s := DecimalString(v)
		if len(s) != phoneDigits {
			return fmt.Errorf("must be %d characters long, got %d", phoneDigits, len(s))
		}
		if s[0] != phonePrefix {
			return fmt.Errorf("must start with %c", phonePrefix)
		}
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return errors.New("must contain only digits")
			}
		}
		return nil
	})
}

// Date accepts a DD.MM.YYYY string naming a real calendar date.
func Date(required, nullable bool) *Field {
	return mustField([]Kind{String}, required, nullable, checkDate)
}

// BirthDay is a Date no further than 70 years in the past.
func BirthDay(required, nullable bool) *Field {
	return mustField([]Kind{String}, required, nullable, func(v any) error {
		if err := checkDate(v); err != nil {
			return err
		}
		born, _ := time.Parse(dateLayout, v.(string))
		if age(born, time.Now()) > maxAgeYears {
			return fmt.Errorf("age must not exceed %d years", maxAgeYears)
		}
		return nil
	})
}

// Gender accepts the integers 0, 1 or 2.
func Gender(required, nullable bool) *Field {
	return mustField([]Kind{Int}, required, nullable, func(v any) error {
		n, _ := IntValue(v)
		if n < 0 || n > genderOption {
			return fmt.Errorf("must be one of 0..%d", genderOption)
		}
		return nil
	})
}

// ClientIDs accepts a non-empty list of numbers.
func ClientIDs(required, nullable bool) *Field {
	return mustField([]Kind{List}, required, nullable, func(v any) error {
		ids := v.([]any)
		if len(ids) == 0 {
			return errors.New("must not be empty")
		}
		for i, id := range ids {
			if !isNumber(id) {
				return fmt.Errorf("element %d is not a number (%v)", i, id)
			}
		}
		return nil
	})
}

func checkDate(v any) error {
	s := v.(string)
	if !dateRe.MatchString(s) {
		return errors.New("must match DD.MM.YYYY")
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return errors.New("is not a valid calendar date")
	}
	return nil
}

// age computes full years between born and now, counting a year only once
// the birthday has passed.
func age(born, now time.Time) int {
	years := now.Year() - born.Year()
	if now.Month() < born.Month() ||
		(now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	return years
}

func mustField(kinds []Kind, required, nullable bool, check CheckFunc) *Field {
	f, err := NewField(kinds, required, nullable, check)
	if err != nil {
		panic(err)
	}
	return f
}
