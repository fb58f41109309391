//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/souvikjs01/unkey/internal/model"
	"github.com/souvikjs01/unkey/internal/query"
	"github.com/souvikjs01/unkey/internal/repository"
	"github.com/souvikjs01/unkey/pkg/logger"
)

const (
	maxNamespaceNameLength = 50
	minWorkspaceNameLength = 3
	maxWorkspaceNameLength = 50
)

var namespaceNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)

// RatelimitService serves the rate limit namespaces of the caller's workspace.
type RatelimitService interface {
	// Overview returns ErrNotFound when orgID has no live workspace.
	Overview(ctx context.Context, orgID string) (*RatelimitOverview, error)
	CreateNamespace(ctx context.Context, orgID, name string) (*model.RatelimitNamespace, error)
	DeleteNamespace(ctx context.Context, orgID, id string) error
	CreateWorkspace(ctx context.Context, orgID, name string) (*model.Workspace, error)
	// PurgeDeletedNamespaces hard deletes namespaces soft deleted more than
	// olderThan ago.
	PurgeDeletedNamespaces(ctx context.Context, olderThan time.Duration) (int64, error)
}

type RatelimitOverview struct {
	WorkspaceID   string
	WorkspaceName string
	Namespaces    []model.NamespaceSummary
}

type ratelimitService struct {
	workspaces repository.WorkspaceRepository
	namespaces repository.RatelimitNamespaceRepository
	now        func() time.Time
}

func NewRatelimitService(workspaces repository.WorkspaceRepository, namespaces repository.RatelimitNamespaceRepository) RatelimitService {
	return &ratelimitService{workspaces: workspaces, namespaces: namespaces, now: time.Now}
}

// OverviewQuery selects the live workspace of orgID with its live namespaces
// reduced to id and name.
func OverviewQuery(orgID string) query.Spec {
	return query.Spec{
		Where: liveWorkspaceOf(orgID),
		With: map[string]query.Include{
			repository.RelationRatelimitNamespaces: {
				Where:   query.IsNull("deleted_at_m"),
				Columns: []string{"id", "name"},
			},
		},
	}
}

func liveWorkspaceOf(orgID string) query.Predicate {
	return query.And(query.Eq("org_id", orgID), query.IsNull("deleted_at_m"))
}

func (s *ratelimitService) Overview(ctx context.Context, orgID string) (*RatelimitOverview, error) {
	if orgID == "" {
		return nil, ErrUnauthorized
	}
	ws, err := s.workspaces.FindFirst(ctx, OverviewQuery(orgID))
	if err != nil {
		return nil, fmt.Errorf("find workspace: %w", err)
	}
	if ws == nil {
		return nil, ErrNotFound
	}

	summaries := make([]model.NamespaceSummary, 0, len(ws.RatelimitNamespaces))
	for _, ns := range ws.RatelimitNamespaces {
		summaries = append(summaries, ns.Summary())
	}
	return &RatelimitOverview{
		WorkspaceID:   ws.ID,
		WorkspaceName: ws.Name,
		Namespaces:    summaries,
	}, nil
}

func (s *ratelimitService) CreateNamespace(ctx context.Context, orgID, name string) (*model.RatelimitNamespace, error) {
	name = strings.TrimSpace(name)
	if !IsValidNamespaceName(name) {
		return nil, ErrInvalid
	}
	ws, err := s.liveWorkspace(ctx, orgID)
	if err != nil {
		return nil, err
	}

	existing, err := s.namespaces.FindByName(ctx, ws.ID, name)
	if err != nil {
		return nil, fmt.Errorf("check namespace name: %w", err)
	}
	if existing != nil {
		return nil, ErrConflict
	}

	ns, err := s.namespaces.Create(ctx, ws.ID, name)
	if errors.Is(err, repository.ErrDuplicate) {
		// lost a race with a concurrent create
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("create namespace: %w", err)
	}
	logger.Info("ratelimit namespace created", "workspace", ws.ID, "namespace", ns.ID)
	return ns, nil
}

func (s *ratelimitService) DeleteNamespace(ctx context.Context, orgID, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalid
	}
	ws, err := s.liveWorkspace(ctx, orgID)
	if err != nil {
		return err
	}
	if err := s.namespaces.SoftDelete(ctx, ws.ID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete namespace: %w", err)
	}
	logger.Info("ratelimit namespace deleted", "workspace", ws.ID, "namespace", id)
	return nil
}

// CreateWorkspace onboards orgID. An organization owns at most one live workspace.
func (s *ratelimitService) CreateWorkspace(ctx context.Context, orgID, name string) (*model.Workspace, error) {
	if orgID == "" {
		return nil, ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if n := len([]rune(name)); n < minWorkspaceNameLength || n > maxWorkspaceNameLength {
		return nil, ErrInvalid
	}

	existing, err := s.workspaces.FindFirst(ctx, query.Spec{Where: liveWorkspaceOf(orgID)})
	if err != nil {
		return nil, fmt.Errorf("check workspace: %w", err)
	}
	if existing != nil {
		return nil, ErrConflict
	}

	ws, err := s.workspaces.Create(ctx, orgID, name)
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	logger.Info("workspace created", "org", orgID, "workspace", ws.ID)
	return ws, nil
}

func (s *ratelimitService) PurgeDeletedNamespaces(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, ErrInvalid
	}
	cutoff := s.now().Add(-olderThan).UnixMilli()
	purged, err := s.namespaces.PurgeDeleted(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge namespaces: %w", err)
	}
	if purged > 0 {
		logger.Info("purged deleted namespaces", "count", purged, "cutoff", cutoff)
	}
	return purged, nil
}

func (s *ratelimitService) liveWorkspace(ctx context.Context, orgID string) (*model.Workspace, error) {
	if orgID == "" {
		return nil, ErrUnauthorized
	}
	ws, err := s.workspaces.FindFirst(ctx, query.Spec{Where: liveWorkspaceOf(orgID)})
	if err != nil {
		return nil, fmt.Errorf("find workspace: %w", err)
	}
	if ws == nil {
		return nil, ErrNotFound
	}
	return ws, nil
}

// IsValidNamespaceName reports whether name is 1-50 characters of letters,
// digits, '_', '-' or '.'.
func IsValidNamespaceName(name string) bool {
	return len(name) <= maxNamespaceNameLength && namespaceNamePattern.MatchString(name)
}
