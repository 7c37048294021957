package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/common"
	pb "github.com/dmitrijs2005/pinvault/internal/proto"
	"github.com/dmitrijs2005/pinvault/internal/server/auth"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/dmitrijs2005/pinvault/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", nopLogger{}, &fakeUsers{}, &fakeItems{}, &fakeProjects{}, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", nopLogger{}, &fakeUsers{}, &fakeItems{}, &fakeProjects{}, "secret")
	assert.Error(t, srv.Run(context.Background()))
}

// dialBufconn serves s on an in-memory listener and returns a connected client.
func dialBufconn(t *testing.T, s *GRPCServer) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return conn
}

func TestEndToEnd_OverBufconn(t *testing.T) {
	access, err := auth.GenerateToken(testOwner, []byte("k"), time.Hour)
	require.NoError(t, err)

	users := &fakeUsers{tokens: &services.TokenPair{AccessToken: access, RefreshToken: "r"}}
	items := &fakeItems{
		item:    &models.Item{ID: "i1", OwnerID: testOwner, Filename: "secrets.env", FileType: models.FileTypeEnv, Kind: models.ItemKindFile, Size: 25},
		content: []byte("API_KEY=abc123\nSECRET=xyz"),
	}
	conn := dialBufconn(t, newServer(users, items, &fakeProjects{}))
	client := pb.NewVaultServiceClient(conn)
	ctx := context.Background()

	pong, err := client.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.Status)

	_, err = client.Me(ctx, &pb.MeRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	login, err := client.Login(ctx, &pb.LoginRequest{Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", users.gotEmail)

	authCtx := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, login.AccessToken)
	me, err := client.Me(authCtx, &pb.MeRequest{})
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Profile.Username)

	bearerCtx := metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, "Bearer "+login.AccessToken)
	got, err := client.GetItem(bearerCtx, &pb.GetItemRequest{Id: "i1", Pin: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "API_KEY=abc123\nSECRET=xyz", string(got.Content))
	assert.Equal(t, "env", got.Item.FileType)
	assert.Equal(t, "1234", items.gotPin)

	items.err = common.ErrInvalidPin
	_, err = client.GetItem(authCtx, &pb.GetItemRequest{Id: "i1", Pin: "0000"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	health, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: pb.VaultService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.Status)
}
