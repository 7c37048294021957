package grpc

import (
	"fmt"

	"github.com/dmitrijs2005/pinvault/internal/common"
	pb "github.com/dmitrijs2005/pinvault/internal/proto"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/dmitrijs2005/pinvault/internal/server/query"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toAPIProfile(p *models.Profile) *pb.Profile {
	return &pb.Profile{Id: string(p.ID), Email: p.Email, Username: p.UserName, CreatedAt: timestamppb.New(p.CreatedAt)}
}

// toAPIItem maps an item to the wire. A nil project becomes "".
func toAPIItem(i *models.Item) *pb.Item {
	item := &pb.Item{
		Id:        string(i.ID),
		Filename:  i.Filename,
		FileType:  string(i.FileType),
		Kind:      string(i.Kind),
		Size:      i.Size,
		CreatedAt: timestamppb.New(i.CreatedAt),
		UpdatedAt: timestamppb.New(i.UpdatedAt),
	}
	if i.ProjectID != nil {
		item.ProjectId = string(*i.ProjectID)
	}
	return item
}

func toAPIProject(p *models.Project) *pb.Project {
	return &pb.Project{
		Id:          string(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		CreatedAt:   timestamppb.New(p.CreatedAt),
		UpdatedAt:   timestamppb.New(p.UpdatedAt),
	}
}

// optionalProject maps the wire convention (empty means none) to a pointer.
func optionalProject(id string) *models.ProjectID {
	if id == "" {
		return nil
	}
	p := models.ProjectID(id)
	return &p
}

func toFilter(req *pb.ListItemsRequest) (query.Filter, error) {
	f := query.Filter{SearchTerm: req.Search}

	switch {
	case req.Unassigned && req.ProjectId != "":
		return f, fmt.Errorf("%w: project_id and unassigned are mutually exclusive", common.ErrorValidation)
	case req.Unassigned:
		f.Project = query.Unassigned()
	case req.ProjectId != "":
		f.Project = query.InProject(models.ProjectID(req.ProjectId))
	}

	if req.FileType != "" {
		ft := models.FileType(req.FileType)
		if !ft.Valid() {
			return f, fmt.Errorf("%w: unknown file type %q", common.ErrorValidation, req.FileType)
		}
		f.FileType = &ft
	}
	if req.ScopeProjectId != "" {
		f.Scope = query.ProjectDetail(models.ProjectID(req.ScopeProjectId))
	}
	return f, nil
}
