package services

import "errors"

// Общие ошибки сервисного слоя, используемые в HTTP-маппинге.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrPlayerNameRequired  = errors.New("player name is required")
	ErrTournamentIDInvalid = errors.New("tournament id must be a positive integer")

	// Ошибки целостности хранилища
	ErrPlayerNotFound     = errors.New("player not found")
	ErrMatchPlayerInvalid = errors.New("match references an unknown player")

	// Ошибки аутентификации
	ErrAuthInvalidCredentials = errors.New("invalid credentials")

	// Экспорт
	ErrExportNotConfigured = errors.New("snapshot export is not configured")
)
