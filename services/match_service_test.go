package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Deesus/Swiss-Tournament-Planner/models"
)

func newMatchService(store *fakeStore) MatchService {
	standings := newStandingsService(store)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMatchService(&fakeMatchRepo{store: store}, standings, nil, logger)
}

func TestReportMatch(t *testing.T) {
	store := newFakeStore()
	ids := seedPlayers(store, "Dee", "Temur")
	service := newMatchService(store)

	match, err := service.Report(context.Background(), ReportMatchInput{
		WinnerID:     ids[0],
		LoserID:      ids[1],
		TournamentID: intPtr(16),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.ID == 0 {
		t.Error("expected assigned match id")
	}
	if match.TournamentID != 16 {
		t.Errorf("expected tournament 16, got %d", match.TournamentID)
	}
}

func TestReportMatchWithoutTournament(t *testing.T) {
	store := newFakeStore()
	ids := seedPlayers(store, "Dee", "Temur")
	service := newMatchService(store)

	match, err := service.Report(context.Background(), ReportMatchInput{
		WinnerID: ids[0],
		LoserID:  ids[1],
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.TournamentID != models.UnscopedTournamentID {
		t.Errorf("expected unscoped bucket %d, got %d", models.UnscopedTournamentID, match.TournamentID)
	}
}

func TestReportMatchUnknownPlayer(t *testing.T) {
	store := newFakeStore()
	seedPlayers(store, "Dee")
	service := newMatchService(store)

	_, err := service.Report(context.Background(), ReportMatchInput{WinnerID: 1, LoserID: 42})
	if !errors.Is(err, ErrMatchPlayerInvalid) {
		t.Fatalf("expected ErrMatchPlayerInvalid, got %v", err)
	}
}

func TestClearMatchesResetsStandings(t *testing.T) {
	store := newFakeStore()
	seedTournament16(store)
	matchService := newMatchService(store)
	standingsService := newStandingsService(store)

	if err := matchService.ClearAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// После очистки таблица турнира возвращается к нулевым записям
	// для всех зарегистрированных игроков.
	standings, err := standingsService.Standings(context.Background(), intPtr(16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(standings) != 10 {
		t.Fatalf("expected all 10 players after clearing matches, got %d", len(standings))
	}
	for _, s := range standings {
		if s.Wins != 0 || s.GamesPlayed != 0 {
			t.Errorf("expected zero record for %s, got %+v", s.Name, s)
		}
	}
}
