package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Deesus/Swiss-Tournament-Planner/models"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	// List возвращает всех игроков в порядке регистрации.
	List(ctx context.Context) ([]models.Player, error)
	Count(ctx context.Context) (int, error)
	// CountParticipants считает различных игроков, сыгравших хотя бы один
	// матч в указанном турнире.
	CountParticipants(ctx context.Context, tournamentID int) (int, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (name)
		VALUES ($1)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, player.Name).Scan(&player.ID, &player.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `
		SELECT id, name, created_at
		FROM players
		WHERE id = $1`

	player := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&player.ID, &player.Name, &player.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player by id %d: %w", id, err)
	}
	return player, nil
}

func (r *postgresPlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	query := `
		SELECT id, name, created_at
		FROM players
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		if scanErr := rows.Scan(&player.ID, &player.Name, &player.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", scanErr)
		}
		players = append(players, player)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during player rows iteration: %w", err)
	}
	return players, nil
}

func (r *postgresPlayerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(id) FROM players`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

func (r *postgresPlayerRepository) CountParticipants(ctx context.Context, tournamentID int) (int, error) {
	// Участие в турнире не хранится отдельно, а выводится из матчей.
	query := `
		SELECT COUNT(*) FROM (
			SELECT winner_id AS player_id FROM matches WHERE tournament_id = $1
			UNION
			SELECT loser_id AS player_id FROM matches WHERE tournament_id = $1
		) AS participants`

	var count int
	err := r.db.QueryRowContext(ctx, query, tournamentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants of tournament %d: %w", tournamentID, err)
	}
	return count, nil
}

func (r *postgresPlayerRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	executor := r.getExecutor(exec)
	if _, err := executor.ExecContext(ctx, `DELETE FROM players`); err != nil {
		return fmt.Errorf("failed to delete players: %w", err)
	}
	return nil
}
