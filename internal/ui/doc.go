package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the artworks table, its paginator and loading indicator, and
// forwards user interactions to the table component. All UI strings are
// localized via Localization.
