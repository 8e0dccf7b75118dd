package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencehub/internal/domain"
)

const conferenceColumns = `id, title, description, start_date, end_date`

type conferenceRepository struct {
	DB *sql.DB
}

// NewConferenceRepository returns a domain.ConferenceRepository implemented with Postgres.
func NewConferenceRepository(db *sql.DB) domain.ConferenceRepository {
	return &conferenceRepository{DB: db}
}

func (r *conferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	query := `
		INSERT INTO conferences (title, description, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, c.Title, c.Description, c.StartDate, c.EndDate).Scan(&c.ID)
	return mapPQError(err)
}

func (r *conferenceRepository) GetByID(ctx context.Context, id int64) (*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE id = $1`
	return scanConference(r.DB.QueryRowContext(ctx, query, id))
}

func (r *conferenceRepository) GetByTitle(ctx context.Context, title string) (*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE title = $1 ORDER BY id LIMIT 1`
	return scanConference(r.DB.QueryRowContext(ctx, query, title))
}

func (r *conferenceRepository) List(ctx context.Context) ([]*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conferences := make([]*domain.Conference, 0)
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		conferences = append(conferences, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return conferences, nil
}

func (r *conferenceRepository) Update(ctx context.Context, id int64, f domain.ConferenceFields) (*domain.Conference, error) {
	query := `
		UPDATE conferences
		SET title = $1, description = $2, start_date = $3, end_date = $4
		WHERE id = $5
		RETURNING ` + conferenceColumns
	c, err := scanConference(r.DB.QueryRowContext(ctx, query, f.Title, f.Description, f.StartDate, f.EndDate, id))
	if err != nil {
		return nil, mapPQError(err)
	}
	return c, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanConference(row rowScanner) (*domain.Conference, error) {
	c := &domain.Conference{}
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.StartDate, &c.EndDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
