package docs

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
)

const documentJSON = `{
	"id": 7, "title": "Budget 2027", "description": "Q1 draft", "file_name": "budget.pdf",
	"owner_id": "u9", "owner_name": "Ana", "status": "pending",
	"created_at": "2026-02-01T10:00:00Z", "updated_at": "2026-02-02T10:00:00Z",
	"approval_flow": {
		"id": "f1",
		"steps": [
			{"step_order": 2, "approver_id": "u2", "approver_name": "Bo", "status": "waiting"},
			{"step_order": 1, "approver_id": 1, "approver_name": "Cy", "status": "approved",
			 "comment": "ok", "decided_at": "2026-02-01T12:00:00Z"}
		]
	}
}`

func TestToDomainDocument(t *testing.T) {
	t.Parallel()

	var dto DocumentDTO
	if err := json.Unmarshal([]byte(documentJSON), &dto); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	doc := ToDomainDocument(&dto)

	if doc.ID != "7" || doc.OwnerID != "u9" || doc.FileName != "budget.pdf" {
		t.Errorf("document = %+v", doc)
	}
	if doc.Status != document.StatusPending {
		t.Errorf("Status = %q, want %q", doc.Status, document.StatusPending)
	}
	if doc.Flow == nil {
		t.Fatal("Flow = nil, want embedded flow")
	}
	if doc.Flow.DocumentID != "7" {
		t.Errorf("Flow.DocumentID = %q, want the document's ID", doc.Flow.DocumentID)
	}
	if len(doc.Flow.Steps) != 2 {
		t.Fatalf("len(Steps) = %d, want 2", len(doc.Flow.Steps))
	}

	first := doc.Flow.Sorted()[0]
	if first.ApproverID != "1" || first.Status != approval.StepApproved || first.DecidedAt == nil {
		t.Errorf("first sorted step = %+v", first)
	}
	if doc.Flow.Steps[0].DecidedAt != nil {
		t.Errorf("undecided step DecidedAt = %v, want nil", doc.Flow.Steps[0].DecidedAt)
	}
}

func TestToDomainDocument_UnknownStatusKept(t *testing.T) {
	t.Parallel()

	doc := ToDomainDocument(&DocumentDTO{ID: "1", Status: "archived"})

	if doc.Status != document.Status("archived") {
		t.Errorf("Status = %q, want verbatim %q", doc.Status, "archived")
	}
	if doc.Flow != nil {
		t.Errorf("Flow = %+v, want nil", doc.Flow)
	}
}

func TestToDomainPage(t *testing.T) {
	t.Parallel()

	dto := DocumentListDTO{Documents: []DocumentDTO{{ID: "1"}, {ID: "2"}}, Total: 42}
	page := ToDomainPage(&dto, document.Filter{Page: 3, Limit: 2})

	if len(page.Documents) != 2 || page.Total != 42 || page.Page != 3 || page.Limit != 2 {
		t.Errorf("page = %+v", page)
	}
}
