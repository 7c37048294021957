package grpc

import (
	"context"

	"github.com/dmitrijs2005/pinvault/internal/common"
	pb "github.com/dmitrijs2005/pinvault/internal/proto"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/dmitrijs2005/pinvault/internal/server/services"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	profile, err := s.users.Register(ctx, services.RegisterInput{
		Email:           req.Email,
		UserName:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Pin:             req.Pin,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RegisterResponse{Profile: toAPIProfile(profile)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, profile, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Profile:      toAPIProfile(profile),
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Me(ctx context.Context, req *pb.MeRequest) (*pb.MeResponse, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.users.Me(ctx, owner)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MeResponse{Profile: toAPIProfile(profile)}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.Empty, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.ChangePassword(ctx, owner, req.OldPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) VerifyPin(ctx context.Context, req *pb.VerifyPinRequest) (*pb.VerifyPinResponse, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := s.items.VerifyPin(ctx, owner, req.Pin)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.VerifyPinResponse{Valid: ok}, nil
}

func (s *GRPCServer) ChangePin(ctx context.Context, req *pb.ChangePinRequest) (*pb.Empty, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.items.ChangePin(ctx, owner, req.OldPin, req.NewPin); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ListItems(ctx context.Context, req *pb.ListItemsRequest) (*pb.ListItemsResponse, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	filter, err := toFilter(req)
	if err != nil {
		return nil, toStatus(err)
	}
	items, err := s.items.ListItems(ctx, owner, filter)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.ListItemsResponse{Items: make([]*pb.Item, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toAPIItem(item))
	}
	return resp, nil
}

// GetItem returns the decrypted content. The service wipes its plaintext
// buffer once the copy for the response has been taken.
func (s *GRPCServer) GetItem(ctx context.Context, req *pb.GetItemRequest) (*pb.GetItemResponse, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var resp *pb.GetItemResponse
	err = s.items.ReadItem(ctx, owner, models.ItemID(req.Id), req.Pin, func(d *models.DecryptedItem) error {
		content := make([]byte, len(d.Content))
		copy(content, d.Content)
		resp = &pb.GetItemResponse{Item: toAPIItem(&d.Item), Content: content}
		return nil
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return resp, nil
}

func (s *GRPCServer) CreateItem(ctx context.Context, req *pb.CreateItemRequest) (*pb.ItemResponse, error) {
	defer common.WipeByteArray(req.Content)
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	item, err := s.items.CreateItem(ctx, services.CreateItemInput{
		Owner:     owner,
		Filename:  req.Filename,
		FileType:  models.FileType(req.FileType),
		Kind:      models.ItemKindFile,
		Content:   req.Content,
		Pin:       req.Pin,
		ProjectID: optionalProject(req.ProjectId),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ItemResponse{Item: toAPIItem(item)}, nil
}

func (s *GRPCServer) CreateNote(ctx context.Context, req *pb.CreateNoteRequest) (*pb.ItemResponse, error) {
	defer common.WipeByteArray(req.Content)
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	fileType := models.FileType(req.FileType)
	if fileType == "" {
		fileType = models.FileTypeTxt
	}
	item, err := s.items.CreateItem(ctx, services.CreateItemInput{
		Owner:     owner,
		Filename:  req.Title,
		FileType:  fileType,
		Kind:      models.ItemKindNote,
		Content:   req.Content,
		Pin:       req.Pin,
		ProjectID: optionalProject(req.ProjectId),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ItemResponse{Item: toAPIItem(item)}, nil
}

func (s *GRPCServer) UpdateItem(ctx context.Context, req *pb.UpdateItemRequest) (*pb.ItemResponse, error) {
	defer common.WipeByteArray(req.Content)
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	in := services.UpdateItemInput{
		Owner:          owner,
		ID:             models.ItemID(req.Id),
		Pin:            req.Pin,
		Filename:       req.Filename,
		ReplaceContent: req.ReplaceContent,
		Content:        req.Content,
	}
	if req.FileType != nil {
		ft := models.FileType(*req.FileType)
		in.FileType = &ft
	}
	if req.Project != nil {
		in.Project = &services.ProjectChange{ProjectID: optionalProject(req.Project.ProjectId)}
	}

	item, err := s.items.UpdateItem(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ItemResponse{Item: toAPIItem(item)}, nil
}

func (s *GRPCServer) MoveItem(ctx context.Context, req *pb.MoveItemRequest) (*pb.ItemResponse, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	item, err := s.items.MoveItem(ctx, owner, models.ItemID(req.Id), optionalProject(req.ProjectId))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ItemResponse{Item: toAPIItem(item)}, nil
}

func (s *GRPCServer) DeleteItem(ctx context.Context, req *pb.DeleteItemRequest) (*pb.Empty, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.items.DeleteItem(ctx, owner, models.ItemID(req.Id)); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ListProjects(ctx context.Context, req *pb.ListProjectsRequest) (*pb.ListProjectsResponse, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.ListProjects(ctx, owner)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.ListProjectsResponse{Projects: make([]*pb.Project, 0, len(projects))}
	for _, p := range projects {
		ap := toAPIProject(&p.Project)
		ap.ItemCount = int64(p.ItemCount)
		resp.Projects = append(resp.Projects, ap)
	}
	return resp, nil
}

func (s *GRPCServer) GetProject(ctx context.Context, req *pb.GetProjectRequest) (*pb.ProjectResponse, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.GetProject(ctx, owner, models.ProjectID(req.Id))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ProjectResponse{Project: toAPIProject(project)}, nil
}

func (s *GRPCServer) CreateProject(ctx context.Context, req *pb.CreateProjectRequest) (*pb.ProjectResponse, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.CreateProject(ctx, owner, services.ProjectInput{
		Name: req.Name, Description: req.Description, Color: req.Color,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ProjectResponse{Project: toAPIProject(project)}, nil
}

func (s *GRPCServer) UpdateProject(ctx context.Context, req *pb.UpdateProjectRequest) (*pb.ProjectResponse, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.UpdateProject(ctx, owner, models.ProjectID(req.Id), services.ProjectInput{
		Name: req.Name, Description: req.Description, Color: req.Color,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ProjectResponse{Project: toAPIProject(project)}, nil
}

func (s *GRPCServer) DeleteProject(ctx context.Context, req *pb.DeleteProjectRequest) (*pb.DeleteProjectResponse, error) {
	owner, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.projects.DeleteProject(ctx, owner, models.ProjectID(req.Id))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.DeleteProjectResponse{UnassignedItems: n}, nil
}
