package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyRowsPerPage       = "rows_per_page"
	KeyPageOf            = "page_of"
	KeyPage              = "page"
	KeyFirstPage         = "first_page"
	KeyPrevPage          = "prev_page"
	KeyNextPage          = "next_page"
	KeyLastPage          = "last_page"
	KeySelectedCount     = "selected_count"
	KeyClearSelection    = "clear_selection"
	KeyExportSelection   = "export_selection"
	KeyExported          = "exported"
	KeyExportFailed      = "export_failed"
	KeyNothingSelected   = "nothing_selected"
	KeyShowInFolder      = "show_in_folder"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyAPIBaseURL        = "api_base_url"
	KeyRequestTimeout    = "request_timeout"
	KeyDiscardStale      = "discard_stale"
	KeyExportDirectory   = "export_directory"
	KeyExportFormat      = "export_format"
	KeySettingsSaved     = "settings_saved"
	KeyNetworkSettings   = "network_settings"
	KeyInterfaceSettings = "interface_settings"

	// column headers are looked up as KeyColumnPrefix + table.Column.Field
	KeyColumnPrefix = "column_"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetColumnHeader returns the localized header for a column field, or
// fallback when no translation exists
func (l *Localization) GetColumnHeader(field, fallback string) string {
	key := KeyColumnPrefix + field
	if text := l.GetText(key); text != key {
		return text
	}
	return fallback
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Artwork Browser",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyRowsPerPage:       "Rows per page",
		KeyPageOf:            "Page %d of %d",
		KeyPage:              "Page %d",
		KeyFirstPage:         "First page",
		KeyPrevPage:          "Previous page",
		KeyNextPage:          "Next page",
		KeyLastPage:          "Last page",
		KeySelectedCount:     "%d selected",
		KeyClearSelection:    "Clear",
		KeyExportSelection:   "Export selection",
		KeyExported:          "Exported %d artworks to %s",
		KeyExportFailed:      "Export failed",
		KeyNothingSelected:   "Select at least one artwork to export",
		KeyShowInFolder:      "Show in folder",
		KeyErrorOpeningFile:  "Error opening file",
		KeyAPIBaseURL:        "API Base URL",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeyDiscardStale:      "Ignore responses for pages no longer shown",
		KeyExportDirectory:   "Export Directory",
		KeyExportFormat:      "Export Format",
		KeySettingsSaved:     "Settings saved. Network settings apply after restart.",
		KeyNetworkSettings:   "Network Settings",
		KeyInterfaceSettings: "Interface Settings",

		KeyColumnPrefix + "title":           "Title",
		KeyColumnPrefix + "place_of_origin": "Place of Origin",
		KeyColumnPrefix + "artist_display":  "Artist Display",
		KeyColumnPrefix + "inscriptions":    "Inscriptions",
		KeyColumnPrefix + "date_start":      "Date Start",
		KeyColumnPrefix + "date_end":        "Date End",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Каталог произведений",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyRowsPerPage:       "Строк на странице",
		KeyPageOf:            "Страница %d из %d",
		KeyPage:              "Страница %d",
		KeyFirstPage:         "Первая страница",
		KeyPrevPage:          "Предыдущая страница",
		KeyNextPage:          "Следующая страница",
		KeyLastPage:          "Последняя страница",
		KeySelectedCount:     "Выбрано: %d",
		KeyClearSelection:    "Сбросить",
		KeyExportSelection:   "Экспорт выбранного",
		KeyExported:          "Экспортировано %d произведений в %s",
		KeyExportFailed:      "Ошибка экспорта",
		KeyNothingSelected:   "Выберите хотя бы одно произведение для экспорта",
		KeyShowInFolder:      "Показать в папке",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyAPIBaseURL:        "Базовый URL API",
		KeyRequestTimeout:    "Таймаут запроса (секунды)",
		KeyDiscardStale:      "Игнорировать ответы для устаревших страниц",
		KeyExportDirectory:   "Папка экспорта",
		KeyExportFormat:      "Формат экспорта",
		KeySettingsSaved:     "Настройки сохранены. Сетевые настройки применятся после перезапуска.",
		KeyNetworkSettings:   "Сеть",
		KeyInterfaceSettings: "Интерфейс",

		KeyColumnPrefix + "title":           "Название",
		KeyColumnPrefix + "place_of_origin": "Место создания",
		KeyColumnPrefix + "artist_display":  "Автор",
		KeyColumnPrefix + "inscriptions":    "Надписи",
		KeyColumnPrefix + "date_start":      "Начало",
		KeyColumnPrefix + "date_end":        "Окончание",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Navegador de Obras",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyRowsPerPage:       "Linhas por página",
		KeyPageOf:            "Página %d de %d",
		KeyPage:              "Página %d",
		KeyFirstPage:         "Primeira página",
		KeyPrevPage:          "Página anterior",
		KeyNextPage:          "Próxima página",
		KeyLastPage:          "Última página",
		KeySelectedCount:     "%d selecionadas",
		KeyClearSelection:    "Limpar",
		KeyExportSelection:   "Exportar seleção",
		KeyExported:          "%d obras exportadas para %s",
		KeyExportFailed:      "Falha na exportação",
		KeyNothingSelected:   "Selecione pelo menos uma obra para exportar",
		KeyShowInFolder:      "Mostrar na pasta",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyAPIBaseURL:        "URL Base da API",
		KeyRequestTimeout:    "Tempo Limite (segundos)",
		KeyDiscardStale:      "Ignorar respostas de páginas antigas",
		KeyExportDirectory:   "Diretório de Exportação",
		KeyExportFormat:      "Formato de Exportação",
		KeySettingsSaved:     "Configurações salvas. As de rede valem após reiniciar.",
		KeyNetworkSettings:   "Rede",
		KeyInterfaceSettings: "Interface",

		KeyColumnPrefix + "title":           "Título",
		KeyColumnPrefix + "place_of_origin": "Local de Origem",
		KeyColumnPrefix + "artist_display":  "Artista",
		KeyColumnPrefix + "inscriptions":    "Inscrições",
		KeyColumnPrefix + "date_start":      "Data Inicial",
		KeyColumnPrefix + "date_end":        "Data Final",
	}
}
