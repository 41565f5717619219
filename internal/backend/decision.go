// Package backend decides which persistence paradigm the process runs on
// and owns the single lazily-established connection to it.
package backend

import "classico-be/internal/entity"

// Decide picks the paradigm from the classified forms. Any contact form
// wins Document storage: free-form message content fits a flexible schema.
// Everything else, including no forms at all, means Relational, whose
// strict schema suits credential data. Pure and deterministic, so
// re-uploading the same archive always lands on the same answer.
func Decide(forms []entity.DetectedForm) entity.BackendKind {
	for _, form := range forms {
		if form.Intent == entity.IntentContact {
			return entity.BackendDocument
		}
	}
	return entity.BackendRelational
}
