package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/bagdasarian/task-tracker/internal/repository"
)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Load(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT id, name, members
		FROM teams
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (r *teamRepository) Save(ctx context.Context, teams []*domain.Team) error {
	query := `
		INSERT INTO teams (id, name, members)
		VALUES ($1, $2, $3)
	`

	return replaceAll(ctx, r.db, "teams", len(teams), func(tx *sql.Tx, i int) error {
		members, err := encodeIDs(teams[i].Members)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, query, teams[i].ID, teams[i].Name, members)
		return err
	})
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `
		SELECT id, name, members
		FROM teams
		WHERE id = $1
	`

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return team, nil
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}
	var members string
	if err := row.Scan(&team.ID, &team.Name, &members); err != nil {
		return nil, err
	}

	var err error
	team.Members, err = decodeIDs(members)
	if err != nil {
		return nil, err
	}

	return team, nil
}
