package swiss

// Pairing — пара игроков следующего раунда.
type Pairing struct {
	Player1ID   int    `json:"p1_id"`
	Player1Name string `json:"p1_name"`
	Player2ID   int    `json:"p2_id"`
	Player2Name string `json:"p2_name"`
}

// Pair разбивает отсортированную таблицу на соседние пары: (0,1), (2,3), ...
// При нечётном числе игроков последний остаётся без пары и в результат
// не попадает (известное ограничение, поддержка bye не реализована).
// Повторные встречи из прошлых раундов не отслеживаются.
func Pair(standings []Standing) []Pairing {
	pairings := make([]Pairing, 0, len(standings)/2)
	for i := 1; i < len(standings); i += 2 {
		first := standings[i-1]
		second := standings[i]
		pairings = append(pairings, Pairing{
			Player1ID:   first.PlayerID,
			Player1Name: first.Name,
			Player2ID:   second.PlayerID,
			Player2Name: second.Name,
		})
	}
	return pairings
}
