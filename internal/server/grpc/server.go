package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/pinvault/internal/logging"
	pb "github.com/dmitrijs2005/pinvault/internal/proto"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/dmitrijs2005/pinvault/internal/server/query"
	"github.com/dmitrijs2005/pinvault/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type userService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.Profile, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, *models.Profile, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Me(ctx context.Context, id models.AccountID) (*models.Profile, error)
	ChangePassword(ctx context.Context, id models.AccountID, oldPassword, newPassword, confirmPassword string) error
}

type itemService interface {
	CreateItem(ctx context.Context, in services.CreateItemInput) (*models.Item, error)
	ReadItem(ctx context.Context, owner models.AccountID, id models.ItemID, pin string, fn func(*models.DecryptedItem) error) error
	UpdateItem(ctx context.Context, in services.UpdateItemInput) (*models.Item, error)
	DeleteItem(ctx context.Context, owner models.AccountID, id models.ItemID) error
	MoveItem(ctx context.Context, owner models.AccountID, id models.ItemID, project *models.ProjectID) (*models.Item, error)
	ListItems(ctx context.Context, owner models.AccountID, filter query.Filter) ([]*models.Item, error)
	VerifyPin(ctx context.Context, owner models.AccountID, pin string) (bool, error)
	ChangePin(ctx context.Context, owner models.AccountID, oldPin, newPin string) error
}

type projectService interface {
	CreateProject(ctx context.Context, owner models.AccountID, in services.ProjectInput) (*models.Project, error)
	GetProject(ctx context.Context, owner models.AccountID, id models.ProjectID) (*models.Project, error)
	ListProjects(ctx context.Context, owner models.AccountID) ([]*models.ProjectWithStats, error)
	UpdateProject(ctx context.Context, owner models.AccountID, id models.ProjectID, in services.ProjectInput) (*models.Project, error)
	DeleteProject(ctx context.Context, owner models.AccountID, id models.ProjectID) (int64, error)
}

// GRPCServer implements pb.VaultServiceServer on top of the services.
type GRPCServer struct {
	pb.UnimplementedVaultServiceServer
	address   string
	users     userService
	items     itemService
	projects  projectService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userService, is itemService, ps projectService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		items:     is,
		projects:  ps,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds the grpc.Server with interceptors, the vault service and
// the standard health service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterVaultServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.VaultService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
