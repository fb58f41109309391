package repository

import "github.com/souvikjs01/unkey/internal/query"

// RelationRatelimitNamespaces is the query.Spec.With key for a workspace's namespaces.
const RelationRatelimitNamespaces = "ratelimitNamespaces"

var (
	WorkspaceColumns = query.NewColumnSet("id", "org_id", "name", "created_at_m", "updated_at_m", "deleted_at_m")
	NamespaceColumns = query.NewColumnSet("id", "workspace_id", "name", "created_at_m", "updated_at_m", "deleted_at_m")
)

// namespaceColumnOrder fixes the projection order when Include.Columns is empty.
var namespaceColumnOrder = []string{"id", "workspace_id", "name", "created_at_m", "updated_at_m", "deleted_at_m"}

// NamespaceInclude extracts and validates the namespace relation from spec.
// ok is false when the spec does not ask for it. Empty Columns expand to all.
func NamespaceInclude(spec query.Spec) (inc query.Include, ok bool, err error) {
	for name := range spec.With {
		if name != RelationRatelimitNamespaces {
			return query.Include{}, false, &UnknownRelationError{Relation: name}
		}
	}
	inc, ok = spec.With[RelationRatelimitNamespaces]
	if !ok {
		return query.Include{}, false, nil
	}
	if err := NamespaceColumns.Validate(inc.Where.Columns()...); err != nil {
		return query.Include{}, false, err
	}
	if err := NamespaceColumns.Validate(inc.Columns...); err != nil {
		return query.Include{}, false, err
	}
	if len(inc.Columns) == 0 {
		inc.Columns = namespaceColumnOrder
	}
	return inc, true, nil
}

type UnknownRelationError struct {
	Relation string
}

func (e *UnknownRelationError) Error() string {
	return "unknown relation " + e.Relation
}
