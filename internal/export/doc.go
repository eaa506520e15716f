package export

// Package export writes artwork records to disk as YAML, JSON or Parquet.
// The format is chosen from the file extension.
