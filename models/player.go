package models

import "time"

// Player представляет зарегистрированного игрока.
// Name не обязан быть уникальным.
type Player struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
