package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository defines the interface for the append-only event log.
type EventRepository interface {
	Record(ctx context.Context, event entity.Event) error
}

var _ EventRepository = &EventPostgres{}

// EventPostgres implements EventRepository using PostgreSQL
type EventPostgres struct {
	db *pgxpool.Pool
}

func NewEventPostgres(db *pgxpool.Pool) *EventPostgres {
	return &EventPostgres{db: db}
}

func (r *EventPostgres) Record(ctx context.Context, event entity.Event) error {
	eventID, err := uuid.Parse(event.ID)
	if err != nil {
		return fmt.Errorf("parse event ID: %w", err)
	}

	data, err := json.Marshal(event.Data)
	if err != nil {
		return fmt.Errorf("encode event data: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO events (id, user_id, type, data, created_at) VALUES ($1, $2, $3, $4, $5)`,
		pgtype.UUID{Bytes: eventID, Valid: true},
		event.UserID,
		event.Type,
		data,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}

	return nil
}
