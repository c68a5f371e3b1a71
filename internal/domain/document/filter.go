package document

import (
	"fmt"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Filter narrows a document listing. A zero Status lists every status.
type Filter struct {
	Status Status
	Page   int
	Limit  int
}

// Normalize applies paging defaults and caps Limit at MaxLimit.
func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
}

// Validate rejects unknown statuses.
func (f *Filter) Validate() error {
	fields := make(map[string]string)
	if f.Status != "" && !f.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", f.Status)
	}
	return domain.NewValidationError(fields)
}
