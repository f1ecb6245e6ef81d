package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Deesus/Swiss-Tournament-Planner/models"
	"github.com/Deesus/Swiss-Tournament-Planner/repositories"
)

type PlayerService interface {
	Register(ctx context.Context, name string) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	// Count возвращает общее число зарегистрированных игроков при nil,
	// иначе — число различных участников указанного турнира.
	Count(ctx context.Context, tournamentID *int) (int, error)
	// ClearAll удаляет всех игроков вместе с их матчами.
	ClearAll(ctx context.Context) error
}

type playerService struct {
	db         *sql.DB
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
}

func NewPlayerService(db *sql.DB, playerRepo repositories.PlayerRepository, matchRepo repositories.MatchRepository) PlayerService {
	return &playerService{
		db:         db,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

func (s *playerService) Register(ctx context.Context, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}

	player := &models.Player{Name: name}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}
	return player, nil
}

func (s *playerService) List(ctx context.Context) ([]models.Player, error) {
	return s.playerRepo.List(ctx)
}

func (s *playerService) Count(ctx context.Context, tournamentID *int) (int, error) {
	if tournamentID == nil {
		return s.playerRepo.Count(ctx)
	}
	return s.playerRepo.CountParticipants(ctx, *tournamentID)
}

func (s *playerService) ClearAll(ctx context.Context) error {
	// Матчи ссылаются на игроков, поэтому чистим их первыми в той же
	// транзакции — осиротевших записей не остаётся.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ClearAll failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.matchRepo.DeleteAll(ctx, tx); err != nil {
		return err
	}
	if err := s.playerRepo.DeleteAll(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ClearAll failed to commit transaction: %w", err)
	}
	return nil
}
