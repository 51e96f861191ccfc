// Package store persists the whole task document as one atomic unit.
//
// Two backends implement the same contract: a JSON file (the default) and
// a SQLite database. Both load and replace the entire document; there is
// no partial update, which keeps every mutation durable at the cost of
// one full write per change.
package store

import "github.com/jyang234/taskpro/internal/model"

// Store loads and saves the full document.
//
// Load must treat an absent store as the valid initial state and return
// an empty document, never an error. Save replaces all prior content.
type Store interface {
	Load() (*model.Document, error)
	Save(doc *model.Document) error
}
