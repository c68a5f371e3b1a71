// Package docs implements the Anti-Corruption Layer translators for the
// backend's document and approval-flow resources.
package docs

import "github.com/jsamuelsen11/docflow-bff/internal/adapters/clients/acl/wire"

// DocumentDTO matches the backend Document schema. ApprovalFlow is embedded
// on single-document reads and on the pending list.
type DocumentDTO struct {
	ID           wire.ID  `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	FileName     string   `json:"file_name"`
	OwnerID      wire.ID  `json:"owner_id"`
	OwnerName    string   `json:"owner_name"`
	Status       string   `json:"status"`
	ApprovalFlow *FlowDTO `json:"approval_flow,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// DocumentListDTO matches GET /api/documents.
type DocumentListDTO struct {
	Documents []DocumentDTO `json:"documents"`
	Total     int           `json:"total"`
}

// PendingListDTO matches GET /api/approvals/pending.
type PendingListDTO struct {
	Approvals []DocumentDTO `json:"approvals"`
}

// FlowDTO matches the backend ApprovalFlow schema.
type FlowDTO struct {
	ID         wire.ID   `json:"id"`
	DocumentID wire.ID   `json:"document_id"`
	Steps      []StepDTO `json:"steps"`
	CreatedAt  string    `json:"created_at"`
}

// StepDTO matches the backend ApprovalStep schema.
type StepDTO struct {
	Order        int     `json:"step_order"`
	ApproverID   wire.ID `json:"approver_id"`
	ApproverName string  `json:"approver_name"`
	Status       string  `json:"status"`
	Comment      string  `json:"comment,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
}

// DecisionRequestDTO is the body of the approve and reject calls.
type DecisionRequestDTO struct {
	Comment string `json:"comment,omitempty"`
}
