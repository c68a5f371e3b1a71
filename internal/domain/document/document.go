// Package document defines documents submitted for approval and the
// filters used to list them.
package document

import (
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
)

// Document is a file submitted for approval.
type Document struct {
	ID          string
	Title       string
	Description string
	FileName    string
	OwnerID     string
	OwnerName   string
	Status      Status
	// Flow is nil when the backend did not embed the approval flow.
	Flow      *approval.Flow
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether userID submitted the document.
func (d *Document) IsOwnedBy(userID string) bool {
	return userID != "" && d.OwnerID == userID
}

// Page is one page of a document listing.
type Page struct {
	Documents []Document
	Total     int
	Page      int
	Limit     int
}
