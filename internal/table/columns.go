package table

import (
	"github.com/ytget/artwork-browser/internal/model"
)

// Column describes one data column of the artworks table
type Column struct {
	Field  string  // API field name, also the localization key suffix
	Header string  // English header text
	Weight float32 // relative width
	Value  func(model.Artwork) string
}

// SelectionColumnWidth is the fixed width of the leading checkbox column
const SelectionColumnWidth float32 = 48

// Columns is the fixed column set, in display order, after the checkbox column
var Columns = []Column{
	{Field: "title", Header: "Title", Weight: 20, Value: func(a model.Artwork) string {
		return model.DisplayText(a.Title)
	}},
	{Field: "place_of_origin", Header: "Place of Origin", Weight: 20, Value: func(a model.Artwork) string {
		return model.DisplayText(a.PlaceOfOrigin)
	}},
	{Field: "artist_display", Header: "Artist Display", Weight: 20, Value: func(a model.Artwork) string {
		return model.DisplayText(a.ArtistDisplay)
	}},
	{Field: "inscriptions", Header: "Inscriptions", Weight: 20, Value: func(a model.Artwork) string {
		return model.DisplayText(a.Inscriptions)
	}},
	{Field: "date_start", Header: "Date Start", Weight: 10, Value: func(a model.Artwork) string {
		return model.DisplayYear(a.DateStart)
	}},
	{Field: "date_end", Header: "Date End", Weight: 10, Value: func(a model.Artwork) string {
		return model.DisplayYear(a.DateEnd)
	}},
}

// TotalWeight sums column weights, used to split the available width
func TotalWeight() float32 {
	var total float32
	for _, c := range Columns {
		total += c.Weight
	}
	return total
}
