package entity

import "time"

// User as seen by callers of the storage facade. Id is the backend's
// native identity normalized to an opaque string (auto-increment integer
// for the relational store, object id hex for the document store);
// callers echo it back but never interpret it.
type User struct {
	Id           string
	Email        string
	Username     *string
	PasswordHash string
	CreatedAt    time.Time
}
