package entity

import "time"

// ExtractionSession tracks one uploaded archive's lifecycle. The archive
// file is removed right after extraction; the extracted tree under
// ExtractionRoot stays around for inspection.
type ExtractionSession struct {
	Id                string
	SourceArchivePath string
	ExtractionRoot    string
	CreatedAt         time.Time
}
