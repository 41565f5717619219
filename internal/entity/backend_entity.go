package entity

// BackendKind is the persistence paradigm picked for the process.
type BackendKind string

const (
	BackendRelational BackendKind = "relational"
	BackendDocument   BackendKind = "document"
)
