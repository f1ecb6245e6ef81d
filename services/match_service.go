package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Deesus/Swiss-Tournament-Planner/models"
	"github.com/Deesus/Swiss-Tournament-Planner/repositories"
	"github.com/Deesus/Swiss-Tournament-Planner/swiss"
)

type ReportMatchInput struct {
	WinnerID     int  `json:"winner_id"`
	LoserID      int  `json:"loser_id"`
	TournamentID *int `json:"tournament_id,omitempty"`
}

type MatchService interface {
	// Report записывает исход матча. Существование игроков сервис не
	// проверяет — ссылочную целостность обеспечивают constraint-ы хранилища.
	Report(ctx context.Context, input ReportMatchInput) (*models.Match, error)
	ClearAll(ctx context.Context) error
}

type matchService struct {
	matchRepo repositories.MatchRepository
	standings StandingsService
	wsHub     *swiss.Hub
	logger    *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	standings StandingsService,
	wsHub *swiss.Hub,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		standings: standings,
		wsHub:     wsHub,
		logger:    logger,
	}
}

func (s *matchService) Report(ctx context.Context, input ReportMatchInput) (*models.Match, error) {
	bucket := models.UnscopedTournamentID
	if input.TournamentID != nil {
		bucket = *input.TournamentID
	}

	match := &models.Match{
		WinnerID:     input.WinnerID,
		LoserID:      input.LoserID,
		TournamentID: bucket,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchPlayerInvalid) {
			return nil, ErrMatchPlayerInvalid
		}
		return nil, fmt.Errorf("failed to report match: %w", err)
	}

	s.broadcastStandings(ctx, input.TournamentID, bucket)

	return match, nil
}

func (s *matchService) ClearAll(ctx context.Context) error {
	return s.matchRepo.DeleteAll(ctx, nil)
}

// broadcastStandings пересчитывает таблицу и рассылает её подписчикам
// комнаты турнира. Ошибка рассылки не отменяет уже записанный матч.
func (s *matchService) broadcastStandings(ctx context.Context, tournamentID *int, bucket int) {
	if s.wsHub == nil {
		return
	}

	standings, err := s.standings.Standings(ctx, tournamentID)
	if err != nil {
		s.logger.Error("failed to recompute standings for broadcast",
			slog.Int("tournament_id", bucket), slog.Any("error", err))
		return
	}

	roomID := fmt.Sprintf("tournament_%d", bucket)
	s.wsHub.BroadcastToRoom(roomID, swiss.Message{
		Type:    "STANDINGS_UPDATED",
		Payload: standings,
		RoomID:  roomID,
	})
}
