package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog/log"

	"github.com/ytget/artwork-browser/internal/artic"
	"github.com/ytget/artwork-browser/internal/export"
	"github.com/ytget/artwork-browser/internal/model"
	"github.com/ytget/artwork-browser/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL       = "api_base_url"
	KeyRowsPerPage      = "rows_per_page"
	KeyRequestTimeout   = "request_timeout_seconds"
	KeyDiscardStale     = "discard_stale_responses"
	KeyExportDirectory  = "export_directory"
	KeyExportFormat     = "export_format"
	KeyLanguage         = "app_language"
	KeyMultiSelectOnTap = "multi_select_on_tap"
)

// Environment overrides, read once by LoadEnvironment
const (
	EnvAPIBaseURL     = "ARTWORKS_API_BASE_URL"
	EnvRequestTimeout = "ARTWORKS_REQUEST_TIMEOUT"
)

// Default values
const (
	DefaultAPIBaseURL       = artic.DefaultBaseURL
	DefaultRequestTimeout   = 30
	DefaultDiscardStale     = true
	DefaultLanguage         = "system"
	DefaultMultiSelectOnTap = false
	DefaultExportFormat     = export.FormatYAML

	MinRequestTimeout = 1
	MaxRequestTimeout = 300
)

// Settings manages application configuration
type Settings struct {
	app fyne.App

	// values from the environment win over stored preferences
	envBaseURL string
	envTimeout time.Duration
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// LoadEnvironment picks up overrides from the process environment. Invalid
// timeout values are logged and ignored.
func (s *Settings) LoadEnvironment() {
	s.envBaseURL = EnvBaseURL()
	s.envTimeout, _ = EnvTimeout()
}

// EnvBaseURL returns the trimmed API base URL override, or ""
func EnvBaseURL() string {
	return strings.TrimSpace(os.Getenv(EnvAPIBaseURL))
}

// EnvTimeout returns the clamped request timeout override. ok is false when
// the variable is unset or invalid; invalid values are logged.
func EnvTimeout() (timeout time.Duration, ok bool) {
	raw := strings.TrimSpace(os.Getenv(EnvRequestTimeout))
	if raw == "" {
		return 0, false
	}
	timeout, err := parseTimeout(raw)
	if err != nil {
		log.Warn().Err(err).Str("value", raw).Msg("Ignoring invalid " + EnvRequestTimeout)
		return 0, false
	}
	return timeout, true
}

// parseTimeout accepts "45s"-style durations or a plain number of seconds
func parseTimeout(raw string) (time.Duration, error) {
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(clampTimeout(secs)) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return time.Duration(clampTimeout(int(d.Seconds()))) * time.Second, nil
}

func clampTimeout(secs int) int {
	if secs < MinRequestTimeout {
		return MinRequestTimeout
	}
	if secs > MaxRequestTimeout {
		return MaxRequestTimeout
	}
	return secs
}

// GetAPIBaseURL returns the artworks API root
func (s *Settings) GetAPIBaseURL() string {
	if s.envBaseURL != "" {
		return s.envBaseURL
	}
	baseURL := s.app.Preferences().String(KeyAPIBaseURL)
	if baseURL == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return baseURL
}

// SetAPIBaseURL sets the artworks API root; empty restores the default
func (s *Settings) SetAPIBaseURL(baseURL string) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, baseURL)
}

// GetRowsPerPage returns the initial rows-per-page choice
func (s *Settings) GetRowsPerPage() int {
	value := s.app.Preferences().Int(KeyRowsPerPage)
	if !model.IsValidRowsPerPage(value) {
		s.SetRowsPerPage(model.DefaultRowsPerPage)
		return model.DefaultRowsPerPage
	}
	return value
}

// SetRowsPerPage stores the rows-per-page choice. Values outside the
// paginator options are replaced by the default.
func (s *Settings) SetRowsPerPage(rows int) {
	if !model.IsValidRowsPerPage(rows) {
		rows = model.DefaultRowsPerPage
	}
	s.app.Preferences().SetInt(KeyRowsPerPage, rows)
}

// GetRequestTimeout returns the per-request HTTP timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	if s.envTimeout > 0 {
		return s.envTimeout
	}
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeout)
		return DefaultRequestTimeout * time.Second
	}
	return time.Duration(value) * time.Second
}

// SetRequestTimeout sets the request timeout in seconds
func (s *Settings) SetRequestTimeout(seconds int) {
	s.app.Preferences().SetInt(KeyRequestTimeout, clampTimeout(seconds))
}

// GetDiscardStaleResponses returns whether superseded responses are dropped
func (s *Settings) GetDiscardStaleResponses() bool {
	return s.app.Preferences().BoolWithFallback(KeyDiscardStale, DefaultDiscardStale)
}

// SetDiscardStaleResponses sets whether superseded responses are dropped
func (s *Settings) SetDiscardStaleResponses(discard bool) {
	s.app.Preferences().SetBool(KeyDiscardStale, discard)
}

// GetSelectionMode returns the selection mode the table is built with
func (s *Settings) GetSelectionMode() model.SelectionMode {
	if s.app.Preferences().BoolWithFallback(KeyMultiSelectOnTap, DefaultMultiSelectOnTap) {
		return model.SelectionCheckbox
	}
	return model.SelectionRowClick
}

// SetSelectionMode stores the selection mode used at the next start
func (s *Settings) SetSelectionMode(mode model.SelectionMode) {
	s.app.Preferences().SetBool(KeyMultiSelectOnTap, mode.IsMultiple())
}

// GetExportDirectory returns the directory selections are exported to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = os.TempDir()
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDirectory, dir)
}

// GetExportFormat returns the format used when exporting a selection.
// Unknown stored values fall back to DefaultExportFormat.
func (s *Settings) GetExportFormat() export.Format {
	format, err := export.ParseFormat(s.app.Preferences().String(KeyExportFormat))
	if err != nil {
		return DefaultExportFormat
	}
	return format
}

// SetExportFormat sets the export format
func (s *Settings) SetExportFormat(format export.Format) {
	if _, err := export.ParseFormat(string(format)); err != nil {
		return
	}
	s.app.Preferences().SetString(KeyExportFormat, string(format))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
