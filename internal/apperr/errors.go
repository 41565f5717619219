// Package apperr holds the sentinel errors all layers agree on. Each error
// message doubles as the stable reason string returned to clients, so the
// texts here must not change casually and must never carry internal detail.
package apperr

import "errors"

var (
	// ErrUnsupportedMedia rejects an upload that is not a zip archive or
	// exceeds the size ceiling. No side effects have happened yet.
	ErrUnsupportedMedia = errors.New("only .zip archives up to 25 MiB are allowed")

	// ErrUnsafeArchiveEntry marks a path-traversal entry. The whole
	// extraction is aborted and the partial tree removed.
	ErrUnsafeArchiveEntry = errors.New("archive contains an entry escaping the extraction directory")

	// ErrEmailTaken is the uniqueness conflict on user creation.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned when an upload session id is unknown
	// or its cached result has expired.
	ErrSessionNotFound = errors.New("upload session not found")

	// ErrConnection surfaces an unreachable backend at provisioning or
	// access time. The core never retries; that is the caller's call.
	ErrConnection = errors.New("storage backend unreachable")
)
