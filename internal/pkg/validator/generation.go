package validator

import (
	"fmt"
	"strings"

	"github.com/futig/sitegen-backend/internal/entity"
)

const (
	MinPageCount = 1
	MaxPageCount = 5
)

// ValidateGenerationRequest checks a multi-page generation request before any
// downstream work happens. Invalid requests must never reach an external call.
func ValidateGenerationRequest(req *entity.GenerationRequest) error {
	if strings.TrimSpace(req.Description) == "" {
		return entity.ErrEmptyDescription
	}
	if req.PageCount < MinPageCount || req.PageCount > MaxPageCount {
		return fmt.Errorf("%w: got %d", entity.ErrInvalidPageCount, req.PageCount)
	}
	return nil
}

// ValidateDescription checks the single-page business flow input.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return entity.ErrEmptyDescription
	}
	return nil
}

// ValidateRecordEvent checks an analytics event before it is appended.
func ValidateRecordEvent(req *entity.RecordEventRequest) error {
	if req.Type == "" {
		return fmt.Errorf("%w: type", entity.ErrMissingField)
	}
	return nil
}

// ValidateRecordFeedback checks a feedback entry before it is appended.
func ValidateRecordFeedback(req *entity.RecordFeedbackRequest) error {
	if req.Rating == "" {
		return fmt.Errorf("%w: rating", entity.ErrMissingField)
	}
	return nil
}
