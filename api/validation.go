// Package api provides the HTTP surface of the interviewer matching service.
package api

import (
	"fmt"
	"strings"

	"github.com/skillswap/interviewer-match/model"
)

const maxQueryLength = 200

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateApplicationID validates an application ID parameter
func ValidateApplicationID(applicationID string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if applicationID == "" {
		result.AddError("applicationId", "Application ID is required")
		return result
	}

	if strings.TrimSpace(applicationID) != applicationID {
		result.AddError("applicationId", "Application ID cannot have leading or trailing whitespace")
		return result
	}

	return result
}

// ValidateSearchQuery validates the search query parameters
func ValidateSearchQuery(position, company string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(position) > maxQueryLength {
		result.AddError("position", fmt.Sprintf("Position query cannot exceed %d characters", maxQueryLength))
	}
	if len(company) > maxQueryLength {
		result.AddError("company", fmt.Sprintf("Company query cannot exceed %d characters", maxQueryLength))
	}

	return result
}

// ValidateInterviewers validates a batch of interviewer records
func ValidateInterviewers(interviewers []model.Interviewer) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(interviewers) == 0 {
		result.AddError("body", "No interviewers provided")
		return result
	}

	for i, iv := range interviewers {
		if strings.TrimSpace(iv.Application.ID) == "" {
			result.AddError(fmt.Sprintf("[%d].application._id", i), "Application ID is required")
		}
		switch iv.Application.Status {
		case model.StatusPending, model.StatusApproved, model.StatusRejected:
		case "":
			result.AddError(fmt.Sprintf("[%d].application.status", i), "Application status is required")
		default:
			result.AddError(fmt.Sprintf("[%d].application.status", i),
				fmt.Sprintf("Unknown application status '%s'", iv.Application.Status))
		}
	}

	return result
}
