package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/common"
	pb "github.com/dmitrijs2005/pinvault/internal/proto"
	"github.com/dmitrijs2005/pinvault/internal/server/auth"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer(secret string) *GRPCServer {
	return NewGRPCServer("", nopLogger{}, &fakeUsers{}, &fakeItems{}, &fakeProjects{}, secret)
}

func info(fullMethod string) *grpc.UnaryServerInfo {
	return &grpc.UnaryServerInfo{FullMethod: fullMethod}
}

func TestInterceptor_PublicMethodsAllowWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	for _, m := range []string{
		pb.VaultService_Ping_FullMethodName,
		pb.VaultService_Register_FullMethodName,
		pb.VaultService_Login_FullMethodName,
		pb.VaultService_RefreshToken_FullMethodName,
	} {
		called := false
		h := func(ctx context.Context, req any) (any, error) {
			called = true
			return "ok", nil
		}
		resp, err := s.accessTokenInterceptor(context.Background(), nil, info(m), h)
		require.NoError(t, err, m)
		assert.True(t, called, m)
		assert.Equal(t, "ok", resp)
	}
}

func TestInterceptor_OtherServicesPassThrough(t *testing.T) {
	s := newTestServer("secret")
	h := func(ctx context.Context, req any) (any, error) { return "ok", nil }

	_, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, h)
	assert.NoError(t, err)
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret")
	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info(pb.VaultService_GetItem_FullMethodName), h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "missing token", status.Convert(err).Message())
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer("secret")
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: "not-a-valid-jwt"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info(pb.VaultService_ListItems_FullMethodName), h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	s := newTestServer("secret")
	token, err := auth.GenerateToken(testOwner, []byte("secret"), -time.Minute)
	require.NoError(t, err)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, token))

	_, err = s.accessTokenInterceptor(ctx, nil, info(pb.VaultService_Me_FullMethodName), func(ctx context.Context, req any) (any, error) {
		return nil, nil
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "token expired", status.Convert(err).Message())
}

func TestInterceptor_ValidToken_SetsUserID(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)
	token, err := auth.GenerateToken(testOwner, []byte(secret), time.Hour)
	require.NoError(t, err)

	for name, md := range map[string]metadata.MD{
		"access_token": metadata.Pairs(common.AccessTokenHeaderName, token),
		"bearer":       metadata.Pairs(common.AuthorizationHeaderName, "Bearer "+token),
	} {
		t.Run(name, func(t *testing.T) {
			var got any
			h := func(ctx context.Context, req any) (any, error) {
				got = ctx.Value(userIDKey)
				return "ok", nil
			}
			_, err := s.accessTokenInterceptor(metadata.NewIncomingContext(context.Background(), md), nil, info(pb.VaultService_Me_FullMethodName), h)
			require.NoError(t, err)
			assert.Equal(t, testOwner, got)
		})
	}
}

func TestUserIDFromContext(t *testing.T) {
	id, err := userIDFromContext(authed())
	require.NoError(t, err)
	assert.Equal(t, testOwner, id)

	_, err = userIDFromContext(context.WithValue(context.Background(), userIDKey, "plain string"))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = userIDFromContext(context.WithValue(context.Background(), userIDKey, models.AccountID("")))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestLoggingInterceptor_PassesResultThrough(t *testing.T) {
	s := newTestServer("secret")
	want := status.Error(codes.NotFound, "not found")

	resp, err := s.loggingInterceptor(context.Background(), nil, info(pb.VaultService_GetItem_FullMethodName), func(ctx context.Context, req any) (any, error) {
		return "r", want
	})
	assert.Equal(t, "r", resp)
	assert.True(t, errors.Is(err, want))
}
