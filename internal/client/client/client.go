package client

import (
	"context"

	pb "github.com/dmitrijs2005/pinvault/internal/proto"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, req *pb.RegisterRequest) (*pb.Profile, error)
	Login(ctx context.Context, email, password string) (*pb.Profile, error)
	Logout()
	LoggedIn() bool
	Me(ctx context.Context) (*pb.Profile, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword, confirm string) error

	VerifyPin(ctx context.Context, pin string) (bool, error)
	ChangePin(ctx context.Context, oldPin, newPin string) error

	ListItems(ctx context.Context, req *pb.ListItemsRequest) ([]*pb.Item, error)
	GetItem(ctx context.Context, id, pin string) (*pb.Item, []byte, error)
	CreateItem(ctx context.Context, req *pb.CreateItemRequest) (*pb.Item, error)
	CreateNote(ctx context.Context, req *pb.CreateNoteRequest) (*pb.Item, error)
	UpdateItem(ctx context.Context, req *pb.UpdateItemRequest) (*pb.Item, error)
	MoveItem(ctx context.Context, id, projectID string) (*pb.Item, error)
	DeleteItem(ctx context.Context, id string) error

	ListProjects(ctx context.Context) ([]*pb.Project, error)
	GetProject(ctx context.Context, id string) (*pb.Project, error)
	CreateProject(ctx context.Context, req *pb.CreateProjectRequest) (*pb.Project, error)
	UpdateProject(ctx context.Context, req *pb.UpdateProjectRequest) (*pb.Project, error)
	DeleteProject(ctx context.Context, id string) (int64, error)
}
