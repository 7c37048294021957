package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/common"
	pb "github.com/dmitrijs2005/pinvault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var _ Client = (*GRPCClient)(nil)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.VaultServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

// accessTokenInterceptor attaches the access token to every call. When the
// server answers "token expired" it rotates the token pair once and repeats
// the call with the new access token.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	accessToken, refreshToken := s.tokens()

	err := invoker(withAccessToken(ctx, accessToken), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refreshToken == "" || method == pb.VaultService_RefreshToken_FullMethodName {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if rerr != nil {
		return rerr
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

// NewGRPCClient connects to endpointURL. Extra dial options are appended
// after the transport credentials and the token interceptor.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewVaultServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return ErrInvalidPin
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.Ping(ctx, &pb.PingRequest{})
	return s.mapError(err)
}

func (s *GRPCClient) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.Profile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetProfile(), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*pb.Profile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return resp.GetProfile(), nil
}

// Logout forgets the session tokens.
func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) LoggedIn() bool {
	access, _ := s.tokens()
	return access != ""
}

func (s *GRPCClient) Me(ctx context.Context) (*pb.Profile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Me(ctx, &pb.MeRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetProfile(), nil
}

func (s *GRPCClient) ChangePassword(ctx context.Context, oldPassword, newPassword, confirm string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.ChangePassword(ctx, &pb.ChangePasswordRequest{
		OldPassword:     oldPassword,
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	})
	return s.mapError(err)
}

func (s *GRPCClient) VerifyPin(ctx context.Context, pin string) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.VerifyPin(ctx, &pb.VerifyPinRequest{Pin: pin})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Valid, nil
}

func (s *GRPCClient) ChangePin(ctx context.Context, oldPin, newPin string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.ChangePin(ctx, &pb.ChangePinRequest{OldPin: oldPin, NewPin: newPin})
	return s.mapError(err)
}

func (s *GRPCClient) ListItems(ctx context.Context, req *pb.ListItemsRequest) ([]*pb.Item, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListItems(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Items, nil
}

// GetItem returns the item and its plaintext. The caller owns the content
// and should wipe it once shown.
func (s *GRPCClient) GetItem(ctx context.Context, id, pin string) (*pb.Item, []byte, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetItem(ctx, &pb.GetItemRequest{Id: id, Pin: pin})
	if err != nil {
		return nil, nil, s.mapError(err)
	}
	return resp.GetItem(), resp.GetContent(), nil
}

func (s *GRPCClient) CreateItem(ctx context.Context, req *pb.CreateItemRequest) (*pb.Item, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CreateItem(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetItem(), nil
}

func (s *GRPCClient) CreateNote(ctx context.Context, req *pb.CreateNoteRequest) (*pb.Item, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CreateNote(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetItem(), nil
}

func (s *GRPCClient) UpdateItem(ctx context.Context, req *pb.UpdateItemRequest) (*pb.Item, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.UpdateItem(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetItem(), nil
}

// MoveItem assigns the item to projectID; an empty projectID unassigns it.
func (s *GRPCClient) MoveItem(ctx context.Context, id, projectID string) (*pb.Item, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.MoveItem(ctx, &pb.MoveItemRequest{Id: id, ProjectId: projectID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetItem(), nil
}

func (s *GRPCClient) DeleteItem(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.DeleteItem(ctx, &pb.DeleteItemRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) ListProjects(ctx context.Context) ([]*pb.Project, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListProjects(ctx, &pb.ListProjectsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Projects, nil
}

func (s *GRPCClient) GetProject(ctx context.Context, id string) (*pb.Project, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetProject(ctx, &pb.GetProjectRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetProject(), nil
}

func (s *GRPCClient) CreateProject(ctx context.Context, req *pb.CreateProjectRequest) (*pb.Project, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CreateProject(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetProject(), nil
}

func (s *GRPCClient) UpdateProject(ctx context.Context, req *pb.UpdateProjectRequest) (*pb.Project, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.UpdateProject(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetProject(), nil
}

// DeleteProject removes the project and returns how many items became
// unassigned.
func (s *GRPCClient) DeleteProject(ctx context.Context, id string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.DeleteProject(ctx, &pb.DeleteProjectRequest{Id: id})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.UnassignedItems, nil
}
