package artic

// Package artic talks to the Art Institute of Chicago public API. It issues
// one GET per requested page against the artworks endpoint and decodes the
// response into model.Page. Every failure is reported as a *FetchError.
