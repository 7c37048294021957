package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/dbx"
	"github.com/dmitrijs2005/pinvault/internal/logging"
	"github.com/dmitrijs2005/pinvault/internal/server/config"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/dmitrijs2005/pinvault/internal/server/repositories/repomanager"
)

// ProjectInput carries the editable fields of a project. An empty Color
// means the default color.
type ProjectInput struct {
	Name        string
	Description string
	Color       string
}

// ProjectService manages projects. None of its operations touch item
// content, so none of them need the PIN.
type ProjectService struct {
	storage
	log logging.Logger
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *ProjectService {
	return &ProjectService{
		storage: storage{db: db, repomanager: m, timeout: cfg.StorageTimeout},
		log:     log.With("module", "projects"),
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, owner models.AccountID, in ProjectInput) (*models.Project, error) {
	name, color, err := validateProjectFields(in.Name, in.Color)
	if err != nil {
		return nil, err
	}

	project := &models.Project{OwnerID: owner, Name: name, Description: in.Description, Color: color}
	err = s.call(ctx, func(ctx context.Context) error {
		var err error
		project, err = s.repomanager.Projects(s.db).Create(ctx, project)
		return err
	})
	if err != nil {
		return nil, internalError(err)
	}

	s.log.Info(ctx, "project created", "project_id", project.ID)
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, owner models.AccountID, id models.ProjectID) (*models.Project, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}
	var project *models.Project
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		project, err = s.repomanager.Projects(s.db).Get(ctx, owner, id)
		return err
	})
	if err != nil {
		return nil, serviceError(err)
	}
	return project, nil
}

// ListProjects returns the owner's projects with their item counts.
func (s *ProjectService) ListProjects(ctx context.Context, owner models.AccountID) ([]*models.ProjectWithStats, error) {
	var projects []*models.ProjectWithStats
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		projects, err = s.repomanager.Projects(s.db).ListByOwner(ctx, owner)
		return err
	})
	if err != nil {
		return nil, internalError(err)
	}
	return projects, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, owner models.AccountID, id models.ProjectID, in ProjectInput) (*models.Project, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}
	name, color, err := validateProjectFields(in.Name, in.Color)
	if err != nil {
		return nil, err
	}

	project := &models.Project{ID: id, OwnerID: owner, Name: name, Description: in.Description, Color: color}
	err = s.call(ctx, func(ctx context.Context) error {
		var err error
		project, err = s.repomanager.Projects(s.db).Update(ctx, project)
		return err
	})
	if err != nil {
		return nil, serviceError(err)
	}
	return project, nil
}

// DeleteProject removes the project and leaves its items unassigned, in one
// transaction. No item is ever deleted by it. It returns how many items
// were unassigned.
func (s *ProjectService) DeleteProject(ctx context.Context, owner models.AccountID, id models.ProjectID) (int64, error) {
	if !validID(id) {
		return 0, common.ErrorNotFound
	}

	var orphaned int64
	err := s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Projects(tx).Get(ctx, owner, id); err != nil {
			return err
		}
		var err error
		orphaned, err = s.repomanager.Items(tx).ClearProject(ctx, owner, id)
		if err != nil {
			return err
		}
		return s.repomanager.Projects(tx).Delete(ctx, owner, id)
	})
	if err != nil {
		return 0, serviceError(err)
	}

	s.log.Info(ctx, "project deleted", "project_id", id, "unassigned_items", orphaned)
	return orphaned, nil
}
