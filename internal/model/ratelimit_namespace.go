package model

// RatelimitNamespace groups rate limit identifiers under a workspace.
type RatelimitNamespace struct {
	ID          string
	WorkspaceID string
	Name        string
	CreatedAtM  int64
	UpdatedAtM  *int64
	DeletedAtM  *int64
}

// NamespaceSummary is the projection handed to the overview view.
type NamespaceSummary struct {
	ID   string
	Name string
}

func (n RatelimitNamespace) Summary() NamespaceSummary {
	return NamespaceSummary{ID: n.ID, Name: n.Name}
}
