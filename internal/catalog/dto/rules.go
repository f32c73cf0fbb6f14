package dto

import (
	"errors"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Ozzo's built-in rules treat zero values as absent and skip the check.
// That is wrong for the custom Date struct and for explicit zeroes sent
// through pointer fields on partial updates, so those fields go through
// By rules that see the value as-is.

// dateRequired rejects missing and zero dates.
func dateRequired(message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		switch v := value.(type) {
		case Date:
			if !v.IsZero() {
				return nil
			}
		case *Date:
			if v != nil && !v.IsZero() {
				return nil
			}
		}
		return errors.New(message)
	})
}

// pastDate rejects dates not strictly before now; missing values pass.
func pastDate(value interface{}) error {
	var t time.Time
	switch v := value.(type) {
	case *Date:
		if v == nil {
			return nil
		}
		t = v.Time
	case Date:
		t = v.Time
	default:
		return nil
	}

	if t.IsZero() {
		return nil
	}
	if !t.Before(time.Now()) {
		return errors.New("Birth date must be in the past")
	}
	return nil
}

// positiveID rejects zero and negative identifiers; nil passes.
func positiveID(message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		switch v := value.(type) {
		case int64:
			if v < 1 {
				return errors.New(message)
			}
		case *int64:
			if v != nil && *v < 1 {
				return errors.New(message)
			}
		}
		return nil
	})
}

// intBetween checks an inclusive range, including explicit zeroes; nil
// passes.
func intBetween(min, max int, minMessage, maxMessage string) validation.Rule {
	return validation.By(func(value interface{}) error {
		var n int
		switch v := value.(type) {
		case int:
			n = v
		case *int:
			if v == nil {
				return nil
			}
			n = *v
		default:
			return nil
		}

		if n < min {
			return errors.New(minMessage)
		}
		if n > max {
			return errors.New(maxMessage)
		}
		return nil
	})
}

// stringBetween checks an inclusive rune-length range, including empty
// strings; nil passes.
func stringBetween(min, max int, message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case *string:
			if v == nil {
				return nil
			}
			s = *v
		default:
			return nil
		}

		if n := utf8.RuneCountInString(s); n < min || n > max {
			return errors.New(message)
		}
		return nil
	})
}
