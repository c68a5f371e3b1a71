// Package domain holds the types shared by the entity sub-packages
// (domain/user, domain/document, domain/approval, domain/auth): sentinel
// errors, validation errors and the standard validation messages.
//
// The document backend owns every entity. Values in these packages are
// request-scoped copies used to interpret state and gate actions locally.
package domain
