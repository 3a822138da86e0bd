package domain

import "time"

// ExpiryConstraints is reported when an expiry date cannot be parsed.
const ExpiryConstraints = "Expiry date should be a valid date in the format yyyy-mm-dd"

// ExpiryDate is the calendar day after which an ingredient should not be used.
// It is kept in its canonical yyyy-mm-dd text so values compare with ==.
type ExpiryDate struct {
	value string
}

// IsValidExpiry reports whether raw is a real calendar date in yyyy-mm-dd form.
func IsValidExpiry(raw string) bool {
	return satisfies(raw, tagDate)
}

// NewExpiryDate validates raw and wraps it.
func NewExpiryDate(raw string) (ExpiryDate, error) {
	if !IsValidExpiry(raw) {
		return ExpiryDate{}, NewConstraintError(FieldExpiryDate, ExpiryConstraints)
	}

	return ExpiryDate{value: raw}, nil
}

// MustExpiryDate is like NewExpiryDate but panics on invalid input.
func MustExpiryDate(raw string) ExpiryDate {
	return must(NewExpiryDate(raw))
}

// ExpiryDateOf builds an ExpiryDate from the calendar day of t.
func ExpiryDateOf(t time.Time) ExpiryDate {
	return ExpiryDate{value: t.Format(expiryLayout)}
}

// Time returns the start of the expiry day in UTC.
func (d ExpiryDate) Time() time.Time {
	t, _ := time.Parse(expiryLayout, d.value)
	return t
}

// IsExpired reports whether the expiry day is strictly before the day of now.
func (d ExpiryDate) IsExpired(now time.Time) bool {
	today := ExpiryDateOf(now).Time()
	return d.Time().Before(today)
}

func (d ExpiryDate) String() string { return d.value }

// IsZero reports whether d was never constructed.
func (d ExpiryDate) IsZero() bool { return d.value == "" }
