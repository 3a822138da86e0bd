package domain

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Custom validation tags registered on the domain validator.
const (
	tagName        = "fridgyname"
	tagQuantity    = "fridgyquantity"
	tagType        = "fridgytype"
	tagDate        = "fridgydate"
	tagDescription = "fridgydescription"
)

// expiryLayout is the canonical text form of an ExpiryDate.
const expiryLayout = "2006-01-02"

var (
	// wordsPattern matches alphanumeric words separated by spaces, no leading space.
	wordsPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)

	// quantityPattern matches a decimal amount with an optional unit suffix.
	quantityPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([A-Za-z]*)$`)

	// datePattern pins the shape before time.Parse checks the calendar.
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// rules returns the singleton validator with the domain tags registered.
func rules() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		_ = validate.RegisterValidation(tagName, validateWords)
		_ = validate.RegisterValidation(tagType, validateWords)
		_ = validate.RegisterValidation(tagQuantity, validateQuantity)
		_ = validate.RegisterValidation(tagDate, validateDate)
		_ = validate.RegisterValidation(tagDescription, validateDescription)
	})

	return validate
}

// satisfies reports whether raw passes the given validator tag.
func satisfies(raw, tag string) bool {
	return rules().Var(raw, tag) == nil
}

func validateWords(fl validator.FieldLevel) bool {
	return wordsPattern.MatchString(fl.Field().String())
}

func validateQuantity(fl validator.FieldLevel) bool {
	m := quantityPattern.FindStringSubmatch(fl.Field().String())
	if m == nil {
		return false
	}

	amount, err := strconv.ParseFloat(m[1], 64)

	return err == nil && amount > 0
}

func validateDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !datePattern.MatchString(value) {
		return false
	}

	_, err := time.Parse(expiryLayout, value)

	return err == nil
}

func validateDescription(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
