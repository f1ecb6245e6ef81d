package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Deesus/Swiss-Tournament-Planner/models"
	"github.com/lib/pq"
)

var ErrMatchPlayerInvalid = errors.New("match references an unknown player")

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	// ListByTournament возвращает матчи турнира; nil — матчи всех турниров.
	ListByTournament(ctx context.Context, tournamentID *int) ([]models.Match, error)
	CountByTournament(ctx context.Context, tournamentID *int) (int, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (winner_id, loser_id, tournament_id)
		VALUES ($1, $2, $3)
		RETURNING id, reported_at`

	err := r.db.QueryRowContext(ctx, query,
		match.WinnerID,
		match.LoserID,
		match.TournamentID,
	).Scan(&match.ID, &match.ReportedAt)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID *int) ([]models.Match, error) {
	query := `
		SELECT id, winner_id, loser_id, tournament_id, reported_at
		FROM matches`
	args := []interface{}{}

	if tournamentID != nil {
		query += ` WHERE tournament_id = $1`
		args = append(args, *tournamentID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var match models.Match
		if scanErr := rows.Scan(
			&match.ID,
			&match.WinnerID,
			&match.LoserID,
			&match.TournamentID,
			&match.ReportedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) CountByTournament(ctx context.Context, tournamentID *int) (int, error) {
	query := `SELECT COUNT(id) FROM matches`
	args := []interface{}{}

	if tournamentID != nil {
		query += ` WHERE tournament_id = $1`
		args = append(args, *tournamentID)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

func (r *postgresMatchRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	executor := r.getExecutor(exec)
	if _, err := executor.ExecContext(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("failed to delete matches: %w", err)
	}
	return nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		// "23503": foreign_key_violation
		switch pqErr.Constraint {
		case "matches_winner_id_fkey", "matches_loser_id_fkey":
			return ErrMatchPlayerInvalid
		}
	}
	return err
}
