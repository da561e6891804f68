package util

import (
	"regexp"
	"strings"
)

// FieldError describes one failing field in a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateMovie checks every movie field and returns one error per failing
// field. A nil rating means the field was absent from the request.
func ValidateMovie(name string, rating *float64, overview, imageURL string) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}
	if rating == nil || *rating < 0 || *rating > 10 {
		errs = append(errs, FieldError{Field: "rating", Message: "Rating must be a number between 0 and 10"})
	}
	if strings.TrimSpace(overview) == "" {
		errs = append(errs, FieldError{Field: "overview", Message: "Overview is required"})
	}
	if strings.TrimSpace(imageURL) == "" {
		errs = append(errs, FieldError{Field: "imageURL", Message: "Image URL is required"})
	}
	return errs
}

// ValidateRegistration checks the registration fields the same way.
func ValidateRegistration(email, username, password string) []FieldError {
	var errs []FieldError
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		errs = append(errs, FieldError{Field: "email", Message: "A valid email is required"})
	}
	if strings.TrimSpace(username) == "" {
		errs = append(errs, FieldError{Field: "username", Message: "Username is required"})
	}
	if len(password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	return errs
}
