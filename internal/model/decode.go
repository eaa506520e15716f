package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// UnmarshalJSON decodes an artwork field by field. A field of the wrong
// type, or a record that is not an object, leaves the zero value instead of
// failing the whole page.
func (a *Artwork) UnmarshalJSON(data []byte) error {
	*a = Artwork{}

	fields, ok := objectFields(data)
	if !ok {
		return nil
	}

	a.ID = lenientInt(fields["id"])
	a.Title = lenientString(fields["title"])
	a.PlaceOfOrigin = lenientString(fields["place_of_origin"])
	a.ArtistDisplay = lenientString(fields["artist_display"])
	a.Inscriptions = lenientString(fields["inscriptions"])
	a.DateStart = lenientInt(fields["date_start"])
	a.DateEnd = lenientInt(fields["date_end"])
	return nil
}

// UnmarshalJSON decodes the pagination block with the same tolerance as
// Artwork
func (p *Pagination) UnmarshalJSON(data []byte) error {
	*p = Pagination{}

	fields, ok := objectFields(data)
	if !ok {
		return nil
	}

	p.Total = lenientInt(fields["total"])
	p.Limit = lenientInt(fields["limit"])
	p.Offset = lenientInt(fields["offset"])
	p.TotalPages = lenientInt(fields["total_pages"])
	p.CurrentPage = lenientInt(fields["current_page"])
	return nil
}

// UnmarshalJSON requires data to be an array, or absent/null which leaves
// Data nil. Its elements decode leniently.
func (p *Page) UnmarshalJSON(data []byte) error {
	var raw struct {
		Pagination json.RawMessage   `json:"pagination"`
		Data       []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Page{}
	if len(raw.Pagination) > 0 {
		if err := p.Pagination.UnmarshalJSON(raw.Pagination); err != nil {
			return err
		}
	}
	if raw.Data == nil {
		return nil
	}

	p.Data = make([]Artwork, len(raw.Data))
	for i, record := range raw.Data {
		if err := p.Data[i].UnmarshalJSON(record); err != nil {
			return err
		}
	}
	return nil
}

func objectFields(data []byte) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// lenientInt accepts integers, integral floats such as 1900.0 and numeric
// strings. Anything else is 0.
func lenientInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0
	}

	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i)
		}
		f, err := x.Float64()
		if err == nil && f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32 {
			return int(f)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return i
		}
	}
	return 0
}

// lenientString returns raw when it is a JSON string, else ""
func lenientString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
