package repository

import (
	"context"
	"fmt"

	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FeedbackRepository defines the interface for the append-only feedback log.
type FeedbackRepository interface {
	Record(ctx context.Context, feedback entity.Feedback) error
}

var _ FeedbackRepository = &FeedbackPostgres{}

// FeedbackPostgres implements FeedbackRepository using PostgreSQL
type FeedbackPostgres struct {
	db *pgxpool.Pool
}

func NewFeedbackPostgres(db *pgxpool.Pool) *FeedbackPostgres {
	return &FeedbackPostgres{db: db}
}

func (r *FeedbackPostgres) Record(ctx context.Context, feedback entity.Feedback) error {
	feedbackID, err := uuid.Parse(feedback.ID)
	if err != nil {
		return fmt.Errorf("parse feedback ID: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO feedback (id, user_id, rating, comment, created_at) VALUES ($1, $2, $3, $4, $5)`,
		pgtype.UUID{Bytes: feedbackID, Valid: true},
		feedback.UserID,
		feedback.Rating,
		feedback.Comment,
		feedback.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record feedback: %w", err)
	}

	return nil
}
