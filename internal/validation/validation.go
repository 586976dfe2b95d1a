// Package validation holds the pure format checks for game fields. Nothing
// here touches the database or the filesystem, so handlers and the service
// can reject bad input before any side effect happens.
package validation

import (
	"fmt"
	"regexp"
)

var (
	nameRe = regexp.MustCompile(`^[a-zA-Z0-9 ]{1,100}$`)
	dateRe = regexp.MustCompile(`^(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])-[0-9]{4}$`)
)

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// CreateFields carries the scalar fields of a create request. All of them are
// mandatory on create.
type CreateFields struct {
	Title       string
	Description string
	Developer   string
	Publisher   string
	ReleaseDate string
}

// UpdateFields carries the scalar fields of an update request. A nil pointer
// means the field was absent from the payload and must not be checked.
type UpdateFields struct {
	Title       *string
	Description *string
	Developer   *string
	Publisher   *string
	ReleaseDate *string
}

// ValidateCreate checks that every field is present and well formed. The
// first violation wins: missing fields are reported before format problems.
func ValidateCreate(in CreateFields) *ValidationError {
	required := []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"description", in.Description},
		{"developer", in.Developer},
		{"publisher", in.Publisher},
		{"releaseDate", in.ReleaseDate},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.name, Reason: "is required"}
		}
	}
	if err := checkTitle(in.Title); err != nil {
		return err
	}
	if err := checkDescription(in.Description); err != nil {
		return err
	}
	if err := checkName("developer", in.Developer); err != nil {
		return err
	}
	if err := checkName("publisher", in.Publisher); err != nil {
		return err
	}
	return checkReleaseDate(in.ReleaseDate)
}

// ValidateUpdate checks only the fields that were actually supplied. At least
// one field or an uploaded file must be present for the update to mean
// anything.
func ValidateUpdate(in UpdateFields, hasFileUpload bool) *ValidationError {
	if in.Title == nil && in.Description == nil && in.Developer == nil &&
		in.Publisher == nil && in.ReleaseDate == nil && !hasFileUpload {
		return &ValidationError{Reason: "no fields provided"}
	}
	if in.Title != nil {
		if err := checkTitle(*in.Title); err != nil {
			return err
		}
	}
	if in.Description != nil {
		if err := checkDescription(*in.Description); err != nil {
			return err
		}
	}
	if in.Developer != nil {
		if err := checkName("developer", *in.Developer); err != nil {
			return err
		}
	}
	if in.Publisher != nil {
		if err := checkName("publisher", *in.Publisher); err != nil {
			return err
		}
	}
	if in.ReleaseDate != nil {
		return checkReleaseDate(*in.ReleaseDate)
	}
	return nil
}

// ParseCompleted maps a supplied completed flag to a bool. Only the literal
// string "true" counts as true; callers handle absence separately.
func ParseCompleted(v string) bool {
	return v == "true"
}

func checkTitle(v string) *ValidationError {
	if !nameRe.MatchString(v) {
		return &ValidationError{Field: "title", Reason: "must be 1-100 alphanumeric characters or spaces"}
	}
	return nil
}

func checkDescription(v string) *ValidationError {
	if len(v) < 1 || len(v) > 500 {
		return &ValidationError{Field: "description", Reason: "must be 1-500 characters"}
	}
	return nil
}

func checkName(field, v string) *ValidationError {
	if !nameRe.MatchString(v) {
		return &ValidationError{Field: field, Reason: "must be 1-100 alphanumeric characters or spaces"}
	}
	return nil
}

func checkReleaseDate(v string) *ValidationError {
	if !dateRe.MatchString(v) {
		return &ValidationError{Field: "releaseDate", Reason: "must be in mm-dd-yyyy format"}
	}
	return nil
}
