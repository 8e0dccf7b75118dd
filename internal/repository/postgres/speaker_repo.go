package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencehub/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

// NewSpeakerRepository returns a domain.SpeakerRepository implemented with Postgres.
func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{DB: db}
}

func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	query := `
		INSERT INTO speakers (username, email, talk_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.Username, s.Email, s.TalkID).Scan(&s.ID)
	return mapPQError(err)
}

func (r *speakerRepository) GetByID(ctx context.Context, id int64) (*domain.Speaker, error) {
	query := `SELECT id, username, email, talk_id FROM speakers WHERE id = $1`
	return scanSpeaker(r.DB.QueryRowContext(ctx, query, id))
}

func (r *speakerRepository) ListByTalkID(ctx context.Context, talkID int64) ([]*domain.Speaker, error) {
	query := `SELECT id, username, email, talk_id FROM speakers WHERE talk_id = $1 ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, talkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	speakers := make([]*domain.Speaker, 0)
	for rows.Next() {
		s, err := scanSpeaker(rows)
		if err != nil {
			return nil, err
		}
		speakers = append(speakers, s)
	}
	return speakers, rows.Err()
}

func (r *speakerRepository) AssignTalk(ctx context.Context, id, talkID int64) (*domain.Speaker, error) {
	query := `
		UPDATE speakers SET talk_id = $1
		WHERE id = $2
		RETURNING id, username, email, talk_id
	`
	s, err := scanSpeaker(r.DB.QueryRowContext(ctx, query, talkID, id))
	if err != nil {
		return nil, mapPQError(err)
	}
	return s, nil
}

func scanSpeaker(row rowScanner) (*domain.Speaker, error) {
	s := &domain.Speaker{}
	if err := row.Scan(&s.ID, &s.Username, &s.Email, &s.TalkID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}
