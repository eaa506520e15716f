package model

// Package model defines domain data structures used across the app: artwork
// records as served by the artworks API, pagination metadata, and the small
// enums (load status, selection mode) the table component exposes to the UI.
