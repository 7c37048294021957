// Package query narrows and orders an owner's items by metadata only.
// It never sees ciphertext or plaintext and never mutates its input.
package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrijs2005/pinvault/internal/server/models"
)

type projectMode int

const (
	projectAny projectMode = iota
	projectUnassigned
	projectID
)

// ProjectFilter restricts items by project association. The zero value
// matches every item.
type ProjectFilter struct {
	mode projectMode
	id   models.ProjectID
}

// AnyProject matches every item.
func AnyProject() ProjectFilter { return ProjectFilter{} }

// Unassigned matches items without a project.
func Unassigned() ProjectFilter { return ProjectFilter{mode: projectUnassigned} }

// InProject matches items of project id.
func InProject(id models.ProjectID) ProjectFilter {
	return ProjectFilter{mode: projectID, id: id}
}

// IsUnassigned reports whether f selects items without a project.
func (f ProjectFilter) IsUnassigned() bool { return f.mode == projectUnassigned }

// ProjectID returns the project f selects, if any.
func (f ProjectFilter) ProjectID() (models.ProjectID, bool) {
	return f.id, f.mode == projectID
}

func (f ProjectFilter) match(item *models.Item) bool {
	switch f.mode {
	case projectUnassigned:
		return item.ProjectID == nil
	case projectID:
		return item.InProject(f.id)
	}
	return true
}

// ViewScope is the outermost restriction: the whole vault or the detail
// page of one project. The zero value is the whole vault.
type ViewScope struct {
	project *models.ProjectID
}

// AllItems is the unrestricted scope.
func AllItems() ViewScope { return ViewScope{} }

// ProjectDetail scopes results to project id.
func ProjectDetail(id models.ProjectID) ViewScope { return ViewScope{project: &id} }

// Project returns the scoped project, if any.
func (s ViewScope) Project() (models.ProjectID, bool) {
	if s.project == nil {
		return "", false
	}
	return *s.project, true
}

// Filter is the full set of list criteria. Each field only narrows.
type Filter struct {
	SearchTerm string
	Project    ProjectFilter
	FileType   *models.FileType
	Scope      ViewScope
}

// Apply returns the items matching f, newest first with ties broken by
// ascending ID. The input slice is left untouched.
func Apply(items []*models.Item, f Filter) []*models.Item {
	term := strings.ToLower(f.SearchTerm)
	scoped, hasScope := f.Scope.Project()

	result := make([]*models.Item, 0, len(items))
	for _, item := range items {
		if hasScope && !item.InProject(scoped) {
			continue
		}
		if !f.Project.match(item) {
			continue
		}
		if f.FileType != nil && item.FileType != *f.FileType {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(item.Filename), term) {
			continue
		}
		result = append(result, item)
	}

	slices.SortStableFunc(result, func(a, b *models.Item) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}
