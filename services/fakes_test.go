package services

import (
	"context"
	"time"

	"github.com/Deesus/Swiss-Tournament-Planner/models"
	"github.com/Deesus/Swiss-Tournament-Planner/repositories"
)

// fakeStore — общее in-memory хранилище для фейковых репозиториев.
type fakeStore struct {
	players      []models.Player
	matches      []models.Match
	nextPlayerID int
	nextMatchID  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextPlayerID: 1, nextMatchID: 1}
}

func (s *fakeStore) hasPlayer(id int) bool {
	for _, p := range s.players {
		if p.ID == id {
			return true
		}
	}
	return false
}

type fakePlayerRepo struct {
	store *fakeStore
}

func (r *fakePlayerRepo) Create(_ context.Context, player *models.Player) error {
	player.ID = r.store.nextPlayerID
	player.CreatedAt = time.Now()
	r.store.nextPlayerID++
	r.store.players = append(r.store.players, *player)
	return nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	for _, p := range r.store.players {
		if p.ID == id {
			player := p
			return &player, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (r *fakePlayerRepo) List(_ context.Context) ([]models.Player, error) {
	return append([]models.Player(nil), r.store.players...), nil
}

func (r *fakePlayerRepo) Count(_ context.Context) (int, error) {
	return len(r.store.players), nil
}

func (r *fakePlayerRepo) CountParticipants(_ context.Context, tournamentID int) (int, error) {
	seen := make(map[int]bool)
	for _, m := range r.store.matches {
		if m.TournamentID == tournamentID {
			seen[m.WinnerID] = true
			seen[m.LoserID] = true
		}
	}
	return len(seen), nil
}

func (r *fakePlayerRepo) DeleteAll(_ context.Context, _ repositories.SQLExecutor) error {
	r.store.players = nil
	return nil
}

type fakeMatchRepo struct {
	store *fakeStore
}

func (r *fakeMatchRepo) Create(_ context.Context, match *models.Match) error {
	// Эмулируем foreign key constraint хранилища.
	if !r.store.hasPlayer(match.WinnerID) || !r.store.hasPlayer(match.LoserID) {
		return repositories.ErrMatchPlayerInvalid
	}
	match.ID = r.store.nextMatchID
	match.ReportedAt = time.Now()
	r.store.nextMatchID++
	r.store.matches = append(r.store.matches, *match)
	return nil
}

func (r *fakeMatchRepo) ListByTournament(_ context.Context, tournamentID *int) ([]models.Match, error) {
	if tournamentID == nil {
		return append([]models.Match(nil), r.store.matches...), nil
	}
	matches := make([]models.Match, 0)
	for _, m := range r.store.matches {
		if m.TournamentID == *tournamentID {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (r *fakeMatchRepo) CountByTournament(ctx context.Context, tournamentID *int) (int, error) {
	matches, err := r.ListByTournament(ctx, tournamentID)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

func (r *fakeMatchRepo) DeleteAll(_ context.Context, _ repositories.SQLExecutor) error {
	r.store.matches = nil
	return nil
}

// seedPlayers регистрирует игроков и возвращает их id в порядке регистрации.
func seedPlayers(store *fakeStore, names ...string) []int {
	repo := &fakePlayerRepo{store: store}
	ids := make([]int, 0, len(names))
	for _, name := range names {
		player := &models.Player{Name: name}
		_ = repo.Create(context.Background(), player)
		ids = append(ids, player.ID)
	}
	return ids
}
