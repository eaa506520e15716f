package table

// Package table implements the ArtworkTable component: the view state of one
// page of artworks (page number, records, selection, loading flag, rows per
// page), the page-load cycle against an artic.Fetcher, and the column set the
// UI renders. It holds no Fyne types so it can be driven from tests and the CLI.
