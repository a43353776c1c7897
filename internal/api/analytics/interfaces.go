package analytics

import (
	"context"

	"github.com/futig/sitegen-backend/internal/entity"
)

type AnalyticsUsecase interface {
	RecordEvent(ctx context.Context, req *entity.RecordEventRequest) error
	RecordFeedback(ctx context.Context, req *entity.RecordFeedbackRequest) error
}
