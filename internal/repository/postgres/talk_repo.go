package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencehub/internal/domain"
)

const talkColumns = `id, title, description, duration, date_time, conference_id`

type talkRepository struct {
	DB *sql.DB
}

// NewTalkRepository returns a domain.TalkRepository implemented with Postgres.
func NewTalkRepository(db *sql.DB) domain.TalkRepository {
	return &talkRepository{DB: db}
}

func (r *talkRepository) Create(ctx context.Context, t *domain.Talk) error {
	query := `
		INSERT INTO talks (title, description, duration, date_time, conference_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, t.Title, t.Description, t.Duration, t.DateTime, t.ConferenceID).Scan(&t.ID)
	return mapPQError(err)
}

func (r *talkRepository) GetByID(ctx context.Context, id int64) (*domain.Talk, error) {
	query := `SELECT ` + talkColumns + ` FROM talks WHERE id = $1`
	return scanTalk(r.DB.QueryRowContext(ctx, query, id))
}

func (r *talkRepository) ListByConferenceID(ctx context.Context, conferenceID int64) ([]*domain.Talk, error) {
	query := `SELECT ` + talkColumns + ` FROM talks WHERE conference_id = $1 ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, conferenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	talks := make([]*domain.Talk, 0)
	for rows.Next() {
		t, err := scanTalk(rows)
		if err != nil {
			return nil, err
		}
		talks = append(talks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return talks, nil
}

func (r *talkRepository) Update(ctx context.Context, id int64, f domain.TalkFields) (*domain.Talk, error) {
	query := `
		UPDATE talks
		SET title = $1, description = $2, duration = $3, date_time = $4, conference_id = $5
		WHERE id = $6
		RETURNING ` + talkColumns
	t, err := scanTalk(r.DB.QueryRowContext(ctx, query, f.Title, f.Description, f.Duration, f.DateTime, f.ConferenceID, id))
	if err != nil {
		return nil, mapPQError(err)
	}
	return t, nil
}

func scanTalk(row rowScanner) (*domain.Talk, error) {
	t := &domain.Talk{}
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Duration, &t.DateTime, &t.ConferenceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}
