package validation

import (
	"errors"
	"html"
	"regexp"
	"sort"
	"strings"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigits  = regexp.MustCompile(`\D`)
	spaces     = regexp.MustCompile(`\s+`)
)

var ErrPastDate = errors.New("Cannot schedule in the past")

// FieldErrors maps a field name to the reason it was rejected.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	messages := make([]string, len(fields))
	for i, field := range fields {
		messages[i] = e[field]
	}

	return strings.Join(messages, "; ")
}

func (e FieldErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}

	return e
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone accepts US numbers: 10 digits, or 11 with the country code.
func IsValidPhone(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return len(cleaned) == 10 || len(cleaned) == 11
}

// SanitizeString escapes markup characters and collapses whitespace.
func SanitizeString(input string) string {
	return html.EscapeString(spaces.ReplaceAllString(strings.TrimSpace(input), " "))
}

// NormalizeInstagram returns the bare lower cased handle of an instagram reference.
func NormalizeInstagram(handle string) string {
	handle = strings.TrimSpace(handle)
	handle = strings.TrimPrefix(handle, "https://")
	handle = strings.TrimPrefix(handle, "www.")
	handle = strings.TrimPrefix(handle, "instagram.com/")
	handle = strings.TrimSuffix(handle, "/")

	return strings.ToLower(strings.TrimPrefix(handle, "@"))
}

type BookingInput struct {
	Name  string
	Email string
	Phone string
}

// ValidateBooking checks the shape of a public booking or intake form.
func ValidateBooking(in BookingInput) error {
	errs := FieldErrors{}

	if len(strings.TrimSpace(in.Name)) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	if !IsValidEmail(in.Email) {
		errs["email"] = "Valid email is required"
	}

	if in.Phone != "" && !IsValidPhone(in.Phone) {
		errs["phone"] = "Invalid phone number format"
	}

	return errs.orNil()
}

// ValidateShootDate rejects dates before the start of the current day.
func ValidateShootDate(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return ErrPastDate
	}

	return nil
}
