package model

import (
	"strconv"
	"strings"
)

// Artwork is a single row of the artworks table. Nullable API fields
// (place_of_origin, inscriptions, years) decode to their zero value.
type Artwork struct {
	ID            int    `json:"id" yaml:"id" parquet:"id"`
	Title         string `json:"title" yaml:"title" parquet:"title"`
	PlaceOfOrigin string `json:"place_of_origin" yaml:"place_of_origin" parquet:"place_of_origin"`
	ArtistDisplay string `json:"artist_display" yaml:"artist_display" parquet:"artist_display"`
	Inscriptions  string `json:"inscriptions" yaml:"inscriptions" parquet:"inscriptions"`
	DateStart     int    `json:"date_start" yaml:"date_start" parquet:"date_start"`
	DateEnd       int    `json:"date_end" yaml:"date_end" parquet:"date_end"`
}

// DisplayText collapses line breaks and tabs so multi-line API values
// (artist_display, inscriptions) fit a single table cell.
func DisplayText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}

// DisplayYear formats a year for display. Zero means the API sent null.
func DisplayYear(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}

// CloneArtworks returns a copy of records that shares no backing array.
// A nil input stays nil.
func CloneArtworks(records []Artwork) []Artwork {
	if records == nil {
		return nil
	}
	out := make([]Artwork, len(records))
	copy(out, records)
	return out
}
