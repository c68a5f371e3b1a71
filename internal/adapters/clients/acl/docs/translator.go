package docs

import (
	"github.com/jsamuelsen11/docflow-bff/internal/adapters/clients/acl/wire"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
)

// ToDomainDocument converts a backend DocumentDTO. Unknown status strings
// are kept verbatim.
func ToDomainDocument(dto *DocumentDTO) document.Document {
	doc := document.Document{
		ID:          dto.ID.String(),
		Title:       dto.Title,
		Description: dto.Description,
		FileName:    dto.FileName,
		OwnerID:     dto.OwnerID.String(),
		OwnerName:   dto.OwnerName,
		Status:      document.Status(dto.Status),
		CreatedAt:   wire.ParseTime(dto.CreatedAt),
		UpdatedAt:   wire.ParseTime(dto.UpdatedAt),
	}
	if dto.ApprovalFlow != nil {
		flow := ToDomainFlow(dto.ApprovalFlow)
		if flow.DocumentID == "" {
			flow.DocumentID = doc.ID
		}
		doc.Flow = &flow
	}
	return doc
}

// ToDomainDocuments converts a slice of DocumentDTOs.
func ToDomainDocuments(dtos []DocumentDTO) []document.Document {
	docs := make([]document.Document, len(dtos))
	for i := range dtos {
		docs[i] = ToDomainDocument(&dtos[i])
	}
	return docs
}

// ToDomainPage converts a list response into a page for filter f.
func ToDomainPage(dto *DocumentListDTO, f document.Filter) document.Page {
	return document.Page{
		Documents: ToDomainDocuments(dto.Documents),
		Total:     dto.Total,
		Page:      f.Page,
		Limit:     f.Limit,
	}
}

// ToDomainFlow converts a backend FlowDTO. Steps keep their wire order;
// callers use Flow.Sorted for display.
func ToDomainFlow(dto *FlowDTO) approval.Flow {
	steps := make([]approval.Step, len(dto.Steps))
	for i, s := range dto.Steps {
		steps[i] = approval.Step{
			Order:        s.Order,
			ApproverID:   s.ApproverID.String(),
			ApproverName: s.ApproverName,
			Status:       approval.StepStatus(s.Status),
			Comment:      s.Comment,
			DecidedAt:    wire.ParseTimePtr(s.DecidedAt),
		}
	}

	return approval.Flow{
		ID:         dto.ID.String(),
		DocumentID: dto.DocumentID.String(),
		Steps:      steps,
		CreatedAt:  wire.ParseTime(dto.CreatedAt),
	}
}
