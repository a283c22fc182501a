package storage

import "cuisine-scene/models"

// ReportWriter is the interface any storage backend must satisfy.
type ReportWriter interface {
	Write(report *models.Report) error
	Close() error
}
