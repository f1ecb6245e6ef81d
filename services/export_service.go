package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Deesus/Swiss-Tournament-Planner/storage"
)

// ExportService выгружает снимок таблицы результатов в объектное хранилище.
type ExportService interface {
	ExportStandings(ctx context.Context, tournamentID *int) (*storage.UploadResult, error)
}

type exportService struct {
	standings StandingsService
	uploader  storage.FileUploader
}

func NewExportService(standings StandingsService, uploader storage.FileUploader) ExportService {
	return &exportService{
		standings: standings,
		uploader:  uploader,
	}
}

func (s *exportService) ExportStandings(ctx context.Context, tournamentID *int) (*storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, ErrExportNotConfigured
	}

	standings, err := s.standings.Standings(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	snapshot := map[string]interface{}{
		"exported_at": time.Now().UTC(),
		"standings":   standings,
	}
	if tournamentID != nil {
		snapshot["tournament_id"] = *tournamentID
	}

	payload, err := json.MarshalIndent(snapshot, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal standings snapshot: %w", err)
	}

	scopeLabel := "all"
	if tournamentID != nil {
		scopeLabel = fmt.Sprintf("tournament-%d", *tournamentID)
	}
	key := fmt.Sprintf("standings/%s/%d.json", scopeLabel, time.Now().Unix())

	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to upload standings snapshot: %w", err)
	}
	return result, nil
}
