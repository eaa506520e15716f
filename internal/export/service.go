package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ytget/artwork-browser/internal/model"
	"github.com/ytget/artwork-browser/internal/platform"
)

// Format is an export file format
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
)

// ErrUnsupportedFormat is returned for unknown formats and file extensions
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Formats lists the supported formats
var Formats = []Format{FormatYAML, FormatJSON, FormatParquet}

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "yml" {
		ext = string(FormatYAML)
	}
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Source describes where the exported records came from. Page is 0 when
// the records may span several pages, as a selection can.
type Source struct {
	BaseURL string `json:"base_url" yaml:"base_url"`
	Page    int    `json:"page,omitempty" yaml:"page,omitempty"`
}

// Header is the metadata block of YAML and JSON exports
type Header struct {
	Source     Source `json:"source" yaml:"source"`
	Count      int    `json:"count" yaml:"count"`
	ExportedAt string `json:"exported_at" yaml:"exported_at"`
}

// Document is the top-level structure of YAML and JSON exports
type Document struct {
	Export   Header          `json:"export" yaml:"export"`
	Artworks []model.Artwork `json:"artworks" yaml:"artworks"`
}

// Service writes export files
type Service struct {
	now func() time.Time
}

// NewService creates a new export service
func NewService() *Service {
	return &Service{now: time.Now}
}

// ExportFile writes records to path in the format its extension names
func (s *Service) ExportFile(path string, source Source, records []model.Artwork) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := s.Write(file, format, source, records); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	log.Info().
		Str("path", path).
		Str("format", string(format)).
		Int("records", len(records)).
		Msg("Artworks exported")

	return nil
}

// Write encodes records to w in the given format
func (s *Service) Write(w io.Writer, format Format, source Source, records []model.Artwork) error {
	if records == nil {
		records = []model.Artwork{}
	}

	doc := Document{
		Export: Header{
			Source:     source,
			Count:      len(records),
			ExportedAt: s.now().UTC().Format(time.RFC3339),
		},
		Artworks: records,
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatParquet:
		// Parquet has no document header, only rows
		if err := parquet.Write(w, records); err != nil {
			return fmt.Errorf("failed to write parquet: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
