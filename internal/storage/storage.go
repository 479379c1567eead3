package storage

import "ntc/internal/domain"

// Storage persists and loads conversion run reports (e.g. for the stats
// and review commands).
type Storage interface {
	Save(report *domain.Report) error
	Load() (*domain.Report, error)
}
