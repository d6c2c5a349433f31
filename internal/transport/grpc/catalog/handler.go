package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/queries/list_products"
)

// Handler implements CatalogQueryServer.
// It's a thin coordinator that delegates to the catalog queries.
type Handler struct {
	listProducts   *list_products.Query
	getProduct     *get_product.Query
	listCategories *list_categories.Query
	logger         *slog.Logger
}

var _ CatalogQueryServer = (*Handler)(nil)

// NewHandler creates a new gRPC catalog handler.
func NewHandler(
	listProducts *list_products.Query,
	getProduct *get_product.Query,
	listCategories *list_categories.Query,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		listProducts:   listProducts,
		getProduct:     getProduct,
		listCategories: listCategories,
		logger:         logger,
	}
}

// ListProducts returns one page of the filtered listing.
func (h *Handler) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	// 1. Map request fields to parameters
	params, err := structToParams(req)
	if err != nil {
		return nil, err
	}

	// 2. Execute query
	result, err := h.listProducts.Execute(ctx, &list_products.Request{Params: params})
	if err != nil {
		return nil, h.fail(ctx, "ListProducts", err)
	}

	// 3. Map to reply
	return h.reply(ctx, map[string]interface{}{
		"products":  viewsToList(result.Products),
		"page":      result.Page,
		"countPage": result.CountPage,
	})
}

// GetProduct returns a single product.
func (h *Handler) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id := req.GetFields()["id"].GetStringValue()
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id: is required")
	}

	view, err := h.getProduct.Execute(ctx, &get_product.Request{ProductID: id})
	if err != nil {
		return nil, h.fail(ctx, "GetProduct", err)
	}

	return h.reply(ctx, view)
}

// ListCategories returns the filtered categories with their product counts.
func (h *Handler) ListCategories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	params, err := structToParams(req)
	if err != nil {
		return nil, err
	}

	views, err := h.listCategories.Execute(ctx, &list_categories.Request{Params: params})
	if err != nil {
		return nil, h.fail(ctx, "ListCategories", err)
	}

	return h.reply(ctx, map[string]interface{}{
		"categories": viewsToList(views),
	})
}

func (h *Handler) fail(ctx context.Context, method string, err error) error {
	mapped := mapDomainErrorToGRPC(err)
	if status.Code(mapped) == codes.Internal {
		h.logger.ErrorContext(ctx, "rpc failed", "method", method, "error", err)
	}
	return mapped
}

func (h *Handler) reply(ctx context.Context, fields map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, h.fail(ctx, "reply", fmt.Errorf("failed to encode reply: %w", err))
	}
	return out, nil
}
