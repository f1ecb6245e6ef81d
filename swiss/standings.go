package swiss

import (
	"sort"

	"github.com/Deesus/Swiss-Tournament-Planner/models"
)

// Standing — строка таблицы результатов одного игрока.
type Standing struct {
	PlayerID          int    `json:"player_id"`
	Name              string `json:"name"`
	Wins              int    `json:"wins"`
	GamesPlayed       int    `json:"games_played"`
	OpponentMatchWins int    `json:"omw"`
}

// ComputeStandings агрегирует результаты матчей в таблицу, отсортированную
// по правилам швейцарской системы: wins DESC, OMW DESC, games_played ASC.
// Дальнейшие ничьи сохраняют порядок входного списка игроков (порядок регистрации).
//
// matches должны быть уже отфильтрованы по нужному турниру. OMW считается
// по каждому сыгранному матчу: повторная встреча с тем же соперником
// добавляет его победы ещё раз.
//
// participantsOnly исключает игроков без единого матча; матчи, ссылающиеся
// на незарегистрированных игроков, игнорируются.
func ComputeStandings(players []models.Player, matches []models.Match, participantsOnly bool) []Standing {
	index := make(map[int]*Standing, len(players))
	ordered := make([]*Standing, 0, len(players))
	for _, p := range players {
		entry := &Standing{PlayerID: p.ID, Name: p.Name}
		index[p.ID] = entry
		ordered = append(ordered, entry)
	}

	for _, m := range matches {
		winner := index[m.WinnerID]
		loser := index[m.LoserID]
		if winner == nil || loser == nil {
			continue
		}
		winner.Wins++
		winner.GamesPlayed++
		loser.GamesPlayed++
	}

	// Второй проход: на этот момент известны итоговые wins всех соперников.
	for _, m := range matches {
		winner := index[m.WinnerID]
		loser := index[m.LoserID]
		if winner == nil || loser == nil {
			continue
		}
		winner.OpponentMatchWins += loser.Wins
		loser.OpponentMatchWins += winner.Wins
	}

	standings := make([]Standing, 0, len(ordered))
	for _, entry := range ordered {
		if participantsOnly && entry.GamesPlayed == 0 {
			continue
		}
		standings = append(standings, *entry)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		if standings[i].OpponentMatchWins != standings[j].OpponentMatchWins {
			return standings[i].OpponentMatchWins > standings[j].OpponentMatchWins
		}
		return standings[i].GamesPlayed < standings[j].GamesPlayed
	})

	return standings
}
