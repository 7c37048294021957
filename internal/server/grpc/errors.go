package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC status codes. Only validation
// messages reach the client verbatim; everything unexpected becomes a
// generic Internal error.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, strings.TrimPrefix(err.Error(), common.ErrorValidation.Error()+": "))
	case errors.Is(err, common.ErrInvalidPin):
		return status.Error(codes.PermissionDenied, "invalid PIN")
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "token expired")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, "refresh token expired")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrInvalidSession):
		return status.Error(codes.Unauthenticated, "invalid session")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, strings.TrimPrefix(err.Error(), common.ErrorAlreadyExists.Error()+": "))
	case errors.Is(err, common.ErrStorageTimeout), errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.Unavailable, "storage timeout, try again")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	}
	return status.Error(codes.Internal, "internal error")
}
