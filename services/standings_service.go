package services

import (
	"context"
	"fmt"

	"github.com/Deesus/Swiss-Tournament-Planner/models"
	"github.com/Deesus/Swiss-Tournament-Planner/repositories"
	"github.com/Deesus/Swiss-Tournament-Planner/swiss"
	"golang.org/x/sync/errgroup"
)

// StandingsService — ядро системы: таблица результатов и пары следующего раунда.
type StandingsService interface {
	// Standings возвращает таблицу турнира. nil tournamentID означает
	// отсутствие скоупа: учитываются все игроки и все матчи.
	Standings(ctx context.Context, tournamentID *int) ([]swiss.Standing, error)
	Pairings(ctx context.Context, tournamentID *int) ([]swiss.Pairing, error)
}

type standingsService struct {
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
}

func NewStandingsService(playerRepo repositories.PlayerRepository, matchRepo repositories.MatchRepository) StandingsService {
	return &standingsService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

func (s *standingsService) Standings(ctx context.Context, tournamentID *int) ([]swiss.Standing, error) {
	var (
		players []models.Player
		matches []models.Match
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load players: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByTournament(gCtx, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to load matches: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Пока в скоупе нет ни одного матча, таблица должна существовать для
	// всех зарегистрированных игроков с нулевыми результатами. Игроки без
	// участия исключаются только для непустого турнирного скоупа.
	participantsOnly := tournamentID != nil && len(matches) > 0

	return swiss.ComputeStandings(players, matches, participantsOnly), nil
}

func (s *standingsService) Pairings(ctx context.Context, tournamentID *int) ([]swiss.Pairing, error) {
	standings, err := s.Standings(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return swiss.Pair(standings), nil
}
