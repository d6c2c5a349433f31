package catalog

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
)

// mapDomainErrorToGRPC converts query errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	if verrs, ok := domain.AsValidationErrors(err); ok {
		return status.Error(codes.InvalidArgument, strings.Join(verrs.Messages(), "; "))
	}

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return status.Error(codes.NotFound, "product not found")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
