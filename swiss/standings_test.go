package swiss

import (
	"reflect"
	"testing"

	"github.com/Deesus/Swiss-Tournament-Planner/models"
)

func testPlayers(names ...string) []models.Player {
	players := make([]models.Player, 0, len(names))
	for i, name := range names {
		players = append(players, models.Player{ID: i + 1, Name: name})
	}
	return players
}

func match(winnerID, loserID int) models.Match {
	return models.Match{WinnerID: winnerID, LoserID: loserID, TournamentID: 16}
}

func TestComputeStandingsNoMatches(t *testing.T) {
	players := testPlayers("Dee", "Temur", "Annie")

	standings := ComputeStandings(players, nil, false)

	if len(standings) != len(players) {
		t.Fatalf("expected %d standings, got %d", len(players), len(standings))
	}
	for i, s := range standings {
		if s.PlayerID != players[i].ID {
			t.Errorf("standing %d: expected player %d in registration order, got %d", i, players[i].ID, s.PlayerID)
		}
		if s.Wins != 0 || s.GamesPlayed != 0 || s.OpponentMatchWins != 0 {
			t.Errorf("standing %d: expected zero record, got %+v", i, s)
		}
	}
}

func TestComputeStandingsRanking(t *testing.T) {
	// Десять игроков, матчи только между пятью из них.
	players := testPlayers("Dee", "Temur", "Annie", "Adam", "Shikhikhutug",
		"Lakshmi", "Yuji", "Bleda", "Attila", "Marie")
	matches := []models.Match{
		match(1, 4), // Dee > Adam
		match(7, 4), // Yuji > Adam
		match(7, 2), // Yuji > Temur
		match(1, 5), // Dee > Shikhikhutug
		match(5, 2), // Shikhikhutug > Temur
	}

	standings := ComputeStandings(players, matches, true)

	wantNames := []string{"Dee", "Yuji", "Shikhikhutug", "Adam", "Temur"}
	gotNames := make([]string, 0, len(standings))
	for _, s := range standings {
		gotNames = append(gotNames, s.Name)
	}
	if !reflect.DeepEqual(gotNames, wantNames) {
		t.Fatalf("expected order %v, got %v", wantNames, gotNames)
	}

	// Лидеры: по две победы, ранжированы по OMW.
	if standings[0].Wins != 2 || standings[1].Wins != 2 {
		t.Errorf("expected top two with 2 wins, got %+v and %+v", standings[0], standings[1])
	}
	if standings[0].OpponentMatchWins <= standings[1].OpponentMatchWins &&
		standings[0].Wins == standings[1].Wins {
		t.Errorf("expected OMW tie-break: %+v before %+v", standings[0], standings[1])
	}
	for _, s := range standings {
		if s.GamesPlayed != 2 {
			t.Errorf("player %s: expected 2 games played, got %d", s.Name, s.GamesPlayed)
		}
	}
}

func TestComputeStandingsSortKeys(t *testing.T) {
	// Группа с одной победой и равным OMW упорядочивается по числу игр,
	// затем по порядку регистрации.
	players := testPlayers("a", "b", "c", "d", "e")
	matches := []models.Match{
		match(1, 3), // a > c
		match(2, 4), // b > d
		match(5, 2), // e > b
		match(3, 4), // c > d
	}

	standings := ComputeStandings(players, matches, false)

	wantNames := []string{"a", "e", "b", "c", "d"}
	gotNames := make([]string, 0, len(standings))
	for _, s := range standings {
		gotNames = append(gotNames, s.Name)
	}
	if !reflect.DeepEqual(gotNames, wantNames) {
		t.Fatalf("expected order %v, got %v", wantNames, gotNames)
	}
}

func TestComputeStandingsRepeatedOpponentOMW(t *testing.T) {
	// Повторная встреча добавляет победы соперника за каждый матч.
	players := testPlayers("a", "b", "c")
	matches := []models.Match{
		match(1, 2), // a > b
		match(1, 2), // a > b
		match(2, 3), // b > c
	}

	standings := ComputeStandings(players, matches, false)

	byName := make(map[string]Standing, len(standings))
	for _, s := range standings {
		byName[s.Name] = s
	}

	if got := byName["a"].OpponentMatchWins; got != 2 {
		t.Errorf("expected OMW 2 for player a (opponent's win counted per match), got %d", got)
	}
	if got := byName["b"].OpponentMatchWins; got != 4 {
		t.Errorf("expected OMW 4 for player b, got %d", got)
	}
}

func TestComputeStandingsParticipantsOnly(t *testing.T) {
	players := testPlayers("a", "b", "c")
	matches := []models.Match{match(1, 2)}

	standings := ComputeStandings(players, matches, true)

	if len(standings) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(standings))
	}
	for _, s := range standings {
		if s.Name == "c" {
			t.Errorf("expected zero-participation player excluded, got %+v", s)
		}
	}
}

func TestComputeStandingsIgnoresUnknownPlayers(t *testing.T) {
	players := testPlayers("a", "b")
	matches := []models.Match{
		match(1, 2),
		match(1, 99), // незарегистрированный игрок
	}

	standings := ComputeStandings(players, matches, false)

	byName := make(map[string]Standing, len(standings))
	for _, s := range standings {
		byName[s.Name] = s
	}
	if got := byName["a"].Wins; got != 1 {
		t.Errorf("expected match with unknown player ignored, got %d wins", got)
	}
	if got := byName["a"].GamesPlayed; got != 1 {
		t.Errorf("expected 1 game played, got %d", got)
	}
}

func TestComputeStandingsIdempotent(t *testing.T) {
	players := testPlayers("a", "b", "c", "d")
	matches := []models.Match{match(1, 2), match(3, 4), match(1, 3)}

	first := ComputeStandings(players, matches, false)
	second := ComputeStandings(players, matches, false)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output on repeated computation:\n%+v\n%+v", first, second)
	}
}
