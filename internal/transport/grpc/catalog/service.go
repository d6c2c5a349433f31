package catalog

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "catalog.v1.CatalogQuery"

const (
	listProductsMethod   = "/" + ServiceName + "/ListProducts"
	getProductMethod     = "/" + ServiceName + "/GetProduct"
	listCategoriesMethod = "/" + ServiceName + "/ListCategories"
)

// CatalogQueryServer is the server API for the catalog query service.
// Requests and replies are google.protobuf.Struct messages.
type CatalogQueryServer interface {
	ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListCategories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc describes the catalog query service for grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogQueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListProducts",
			Handler: unaryHandler(listProductsMethod, func(s CatalogQueryServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return s.ListProducts(ctx, req)
			}),
		},
		{
			MethodName: "GetProduct",
			Handler: unaryHandler(getProductMethod, func(s CatalogQueryServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return s.GetProduct(ctx, req)
			}),
		},
		{
			MethodName: "ListCategories",
			Handler: unaryHandler(listCategoriesMethod, func(s CatalogQueryServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return s.ListCategories(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

// RegisterCatalogQueryServer registers srv on s.
func RegisterCatalogQueryServer(s grpc.ServiceRegistrar, srv CatalogQueryServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type unaryCall func(s CatalogQueryServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogQueryServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(CatalogQueryServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client calls the catalog query service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client on an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) ListProducts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, listProductsMethod, in, opts...)
}

func (c *Client) GetProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, getProductMethod, in, opts...)
}

func (c *Client) ListCategories(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, listCategoriesMethod, in, opts...)
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
