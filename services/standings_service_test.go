package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/Deesus/Swiss-Tournament-Planner/models"
)

func intPtr(v int) *int { return &v }

func seedTournament16(store *fakeStore) []int {
	ids := seedPlayers(store, "Dee", "Temur", "Annie", "Adam", "Shikhikhutug",
		"Lakshmi", "Yuji", "Bleda", "Attila", "Marie")

	report := func(winner, loser int) {
		store.matches = append(store.matches, models.Match{
			ID:           store.nextMatchID,
			WinnerID:     winner,
			LoserID:      loser,
			TournamentID: 16,
		})
		store.nextMatchID++
	}
	report(ids[0], ids[3]) // Dee > Adam
	report(ids[6], ids[3]) // Yuji > Adam
	report(ids[6], ids[1]) // Yuji > Temur
	report(ids[0], ids[4]) // Dee > Shikhikhutug
	report(ids[4], ids[1]) // Shikhikhutug > Temur

	return ids
}

func newStandingsService(store *fakeStore) StandingsService {
	return NewStandingsService(&fakePlayerRepo{store: store}, &fakeMatchRepo{store: store})
}

func TestStandingsTournamentScope(t *testing.T) {
	store := newFakeStore()
	seedTournament16(store)
	service := newStandingsService(store)

	standings, err := service.Standings(context.Background(), intPtr(16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantNames := []string{"Dee", "Yuji", "Shikhikhutug", "Adam", "Temur"}
	gotNames := make([]string, 0, len(standings))
	for _, s := range standings {
		gotNames = append(gotNames, s.Name)
	}
	if !reflect.DeepEqual(gotNames, wantNames) {
		t.Fatalf("expected order %v, got %v", wantNames, gotNames)
	}

	// Незадействованные в турнире игроки не попадают в таблицу.
	if len(standings) != 5 {
		t.Fatalf("expected 5 participants, got %d", len(standings))
	}
}

func TestStandingsEmptyScopeFallsBackToAllPlayers(t *testing.T) {
	store := newFakeStore()
	seedTournament16(store)
	service := newStandingsService(store)

	// В турнире 99 матчей нет: возвращаются все игроки с нулями.
	standings, err := service.Standings(context.Background(), intPtr(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(standings) != 10 {
		t.Fatalf("expected all 10 registered players, got %d", len(standings))
	}
	for _, s := range standings {
		if s.Wins != 0 || s.GamesPlayed != 0 {
			t.Errorf("expected zero record for %s, got %+v", s.Name, s)
		}
	}
}

func TestStandingsUnscopedIncludesEveryone(t *testing.T) {
	store := newFakeStore()
	seedTournament16(store)
	service := newStandingsService(store)

	standings, err := service.Standings(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Без скоупа учитываются все матчи и все игроки, даже не игравшие.
	if len(standings) != 10 {
		t.Fatalf("expected all 10 players without scope, got %d", len(standings))
	}
	if standings[0].Name != "Dee" {
		t.Errorf("expected Dee on top, got %s", standings[0].Name)
	}
}

func TestStandingsIdempotent(t *testing.T) {
	store := newFakeStore()
	seedTournament16(store)
	service := newStandingsService(store)

	first, err := service.Standings(context.Background(), intPtr(16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.Standings(context.Background(), intPtr(16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical standings without intervening writes:\n%+v\n%+v", first, second)
	}
}

func TestPairingsAdjacentFromStandings(t *testing.T) {
	store := newFakeStore()
	seedTournament16(store)
	service := newStandingsService(store)

	pairings, err := service.Pairings(context.Background(), intPtr(16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Пять участников: две пары, последний остаётся без пары.
	if len(pairings) != 2 {
		t.Fatalf("expected 2 pairings, got %d", len(pairings))
	}
	if pairings[0].Player1Name != "Dee" || pairings[0].Player2Name != "Yuji" {
		t.Errorf("expected (Dee, Yuji) first, got (%s, %s)", pairings[0].Player1Name, pairings[0].Player2Name)
	}
	if pairings[1].Player1Name != "Shikhikhutug" || pairings[1].Player2Name != "Adam" {
		t.Errorf("expected (Shikhikhutug, Adam) second, got (%s, %s)", pairings[1].Player1Name, pairings[1].Player2Name)
	}
}
