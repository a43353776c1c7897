// Package analytics appends usage events and feedback entries. The log is
// insert-only: nothing in the service reads, updates or deletes entries.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/futig/sitegen-backend/internal/pkg/validator"
	"github.com/futig/sitegen-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Comments longer than this are truncated, not rejected.
const maxCommentLength = 1000

// AnalyticsUsecase implements the append-only analytics log.
type AnalyticsUsecase struct {
	eventRepo    repository.EventRepository
	feedbackRepo repository.FeedbackRepository
	logger       *zap.Logger
}

// NewUsecase creates a new analytics use case
func NewUsecase(
	eventRepo repository.EventRepository,
	feedbackRepo repository.FeedbackRepository,
	logger *zap.Logger,
) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		eventRepo:    eventRepo,
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// RecordEvent appends one usage event.
func (uc *AnalyticsUsecase) RecordEvent(ctx context.Context, req *entity.RecordEventRequest) error {
	if err := validator.ValidateRecordEvent(req); err != nil {
		return err
	}

	event := entity.Event{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Type:      req.Type,
		Data:      req.Data,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.eventRepo.Record(ctx, event); err != nil {
		return fmt.Errorf("record event: %w", err)
	}

	ctxzap.Info(ctx, "event recorded",
		zap.String("event_id", event.ID),
		zap.String("type", event.Type),
	)

	return nil
}

// RecordFeedback appends one feedback entry, truncating oversized comments.
func (uc *AnalyticsUsecase) RecordFeedback(ctx context.Context, req *entity.RecordFeedbackRequest) error {
	if err := validator.ValidateRecordFeedback(req); err != nil {
		return err
	}

	comment := req.Comment
	if len(comment) > maxCommentLength {
		comment = comment[:maxCommentLength]
	}

	feedback := entity.Feedback{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.feedbackRepo.Record(ctx, feedback); err != nil {
		return fmt.Errorf("record feedback: %w", err)
	}

	ctxzap.Info(ctx, "feedback recorded",
		zap.String("feedback_id", feedback.ID),
		zap.String("rating", feedback.Rating),
	)

	return nil
}
