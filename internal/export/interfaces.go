package export

import (
	"github.com/ytget/artwork-browser/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	ExportFile(path string, source Source, records []model.Artwork) error
}
