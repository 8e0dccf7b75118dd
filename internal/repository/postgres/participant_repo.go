package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencehub/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

// NewParticipantRepository returns a domain.ParticipantRepository implemented with Postgres.
func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{DB: db}
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (username, email, talk_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, p.Username, p.Email, p.TalkID).Scan(&p.ID)
	return mapPQError(err)
}

func (r *participantRepository) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	query := `SELECT id, username, email, talk_id FROM participants WHERE id = $1`
	return scanParticipant(r.DB.QueryRowContext(ctx, query, id))
}

func (r *participantRepository) ListByTalkID(ctx context.Context, talkID int64) ([]*domain.Participant, error) {
	query := `SELECT id, username, email, talk_id FROM participants WHERE talk_id = $1 ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, talkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *participantRepository) AssignTalk(ctx context.Context, id, talkID int64) (*domain.Participant, error) {
	query := `
		UPDATE participants SET talk_id = $1
		WHERE id = $2
		RETURNING id, username, email, talk_id
	`
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, talkID, id))
	if err != nil {
		return nil, mapPQError(err)
	}
	return p, nil
}

func scanParticipant(row rowScanner) (*domain.Participant, error) {
	p := &domain.Participant{}
	if err := row.Scan(&p.ID, &p.Username, &p.Email, &p.TalkID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
