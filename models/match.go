package models

import "time"

// UnscopedTournamentID — корзина для матчей, сыгранных вне турнира.
// Записи без явного tournament_id попадают сюда.
const UnscopedTournamentID = 0

// Match фиксирует результат одного матча. Запись неизменяема:
// создаётся при репорте результата, удаляется только массовой очисткой.
type Match struct {
	ID           int       `json:"id"`
	WinnerID     int       `json:"winner_id"`
	LoserID      int       `json:"loser_id"`
	TournamentID int       `json:"tournament_id"`
	ReportedAt   time.Time `json:"reported_at"`
}
