package grpc

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mahabubulhasibshawon/storefront/internal/application"
	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/pkg/auth"
)

const GetOrderMethod = "/storefront.OrderStatus/GetOrder"

// OrderStatusServer is the read-only order status service. Payloads are
// well-known types so no generated code is needed on either side.
type OrderStatusServer interface {
	GetOrder(ctx context.Context, orderID *wrapperspb.StringValue) (*structpb.Struct, error)
}

var OrderStatusServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.OrderStatus",
	HandlerType: (*OrderStatusServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetOrder", Handler: getOrderHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/order_status",
}

func RegisterOrderStatusServer(s grpc.ServiceRegistrar, srv OrderStatusServer) {
	s.RegisterService(&OrderStatusServiceDesc, srv)
}

func getOrderHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderStatusServer).GetOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetOrderMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderStatusServer).GetOrder(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

type Server struct {
	orders *application.OrderService
	log    *logrus.Entry
}

func NewServer(orders *application.OrderService, log *logrus.Entry) *Server {
	return &Server{orders: orders, log: log}
}

func (s *Server) GetOrder(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "Unauthorized")
	}
	orderID := strings.TrimSpace(req.GetValue())
	if orderID == "" {
		return nil, status.Error(codes.InvalidArgument, "order id is required")
	}

	order, err := s.orders.GetOrder(ctx, orderID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "order not found")
	}
	if err != nil {
		s.log.WithError(err).WithField("order_id", orderID).Error("get order failed")
		return nil, status.Error(codes.Internal, "internal error")
	}

	return structpb.NewStruct(map[string]interface{}{
		"id":     order.ID,
		"status": order.Status.String(),
		"total":  order.Total.String(),
	})
}

type claimsKey struct{}

// AuthInterceptor requires a valid bearer token in the authorization
// metadata on every call except the public methods.
func AuthInterceptor(issuer *auth.Issuer, public ...string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if slices.Contains(public, info.FullMethod) {
			return handler(ctx, req)
		}
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}
		authHeader := md.Get("authorization")
		if len(authHeader) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization")
		}
		token := strings.TrimPrefix(authHeader[0], "Bearer ")
		claims, err := issuer.ValidateToken(token)
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		return handler(context.WithValue(ctx, claimsKey{}, claims), req)
	}
}

func getUserIDFromContext(ctx context.Context) (int64, error) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	if !ok || claims == nil {
		return 0, errors.New("missing claims")
	}
	return claims.UserID, nil
}
