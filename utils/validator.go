package utils

import (
	"encoding/json"
	"math"
	"strings"
)

// Request payload validators. Kept hand-rolled: the shapes are tiny and
// fixed, and services re-check their own invariants anyway.

// ValidateUserPayload checks the user-creation body. Nickname must be
// non-empty after trimming; seed must be present (any integer is valid).
func ValidateUserPayload(nickname string, seed *int64) *AppError {
	if strings.TrimSpace(nickname) == "" {
		return ValidationError("Nickname is required.")
	}
	if seed == nil {
		return ValidationError("Seed is required and must be a number.")
	}
	return nil
}

// ValidateElapsedTimePayload checks the endscreen submission body.
func ValidateElapsedTimePayload(elapsedTime *float64) *AppError {
	if elapsedTime == nil {
		return ValidationError("Elapsed time is required.")
	}
	if math.IsNaN(*elapsedTime) || math.IsInf(*elapsedTime, 0) || *elapsedTime <= 0 {
		return ValidationError("Elapsed time must be a positive number.")
	}
	return nil
}

// ValidateTaskUpdatePayload requires the userInput key to be present in
// the body. An explicit null is accepted (it serializes to "null"),
// absence is not.
func ValidateTaskUpdatePayload(userInput json.RawMessage) *AppError {
	if userInput == nil {
		return ValidationError("userInput is required.")
	}
	return nil
}
