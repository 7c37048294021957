package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/common"
	pb "github.com/dmitrijs2005/pinvault/internal/proto"
	"github.com/dmitrijs2005/pinvault/internal/server/auth"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// publicMethods can be called without an access token. Everything else,
// including methods this server does not know, requires one.
var publicMethods = map[string]bool{
	pb.VaultService_Ping_FullMethodName:         true,
	pb.VaultService_Register_FullMethodName:     true,
	pb.VaultService_Login_FullMethodName:        true,
	pb.VaultService_RefreshToken_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] || !strings.HasPrefix(info.FullMethod, "/"+pb.VaultService_ServiceDesc.ServiceName+"/") {
		return handler(ctx, req)
	}

	accessToken := tokenFromMetadata(ctx)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, toStatus(err)
	}

	ctx = context.WithValue(ctx, userIDKey, userID)
	return handler(ctx, req)
}

// tokenFromMetadata reads the access token from the access_token header
// or from "authorization: Bearer <token>".
func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 && values[0] != "" {
		return values[0]
	}
	for _, v := range md.Get(common.AuthorizationHeaderName) {
		if token, ok := strings.CutPrefix(v, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return ""
}

// loggingInterceptor logs method, status code and duration of every call.
// Requests and responses are never logged: they carry PINs and content.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	switch code {
	case codes.OK:
		s.logger.Info(ctx, "request served", args...)
	case codes.Internal, codes.Unavailable, codes.Unknown:
		s.logger.Error(ctx, "request failed", args...)
	default:
		s.logger.Warn(ctx, "request rejected", args...)
	}
	return resp, err
}

// userIDFromContext returns the account set by accessTokenInterceptor.
func userIDFromContext(ctx context.Context) (models.AccountID, error) {
	id, ok := ctx.Value(userIDKey).(models.AccountID)
	if !ok || id == "" {
		return "", status.Error(codes.Unauthenticated, "invalid session")
	}
	return id, nil
}
