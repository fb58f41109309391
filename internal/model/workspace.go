package model

// Workspace is the tenant container owned by an organization.
// DeletedAtM is nil for live workspaces.
type Workspace struct {
	ID         string
	OrgID      string
	Name       string
	CreatedAtM int64
	UpdatedAtM *int64
	DeletedAtM *int64

	// RatelimitNamespaces is only populated when the query asks for it.
	RatelimitNamespaces []RatelimitNamespace
}
