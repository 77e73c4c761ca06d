package client

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/gateway"
)

const getOrderMethod = "/storefront.OrderStatus/GetOrder"

// OrderStatusClient reads order status over gRPC. It satisfies the same
// OrderPort as the REST client so the payment driver can poll either.
type OrderStatusClient struct {
	conn *grpc.ClientConn
}

// DialOrderStatus connects to addr with the gateway's refresh-and-replay
// interceptor installed.
func DialOrderStatus(addr string, gw *gateway.Gateway, opts ...grpc.DialOption) (*OrderStatusClient, error) {
	base := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(gw.UnaryClientInterceptor()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
	conn, err := grpc.NewClient(addr, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	return &OrderStatusClient{conn: conn}, nil
}

func NewOrderStatusClient(conn *grpc.ClientConn) *OrderStatusClient {
	return &OrderStatusClient{conn: conn}
}

func (c *OrderStatusClient) Close() error {
	return c.conn.Close()
}

func (c *OrderStatusClient) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, getOrderMethod, wrapperspb.String(orderID), out); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
		}
		return nil, err
	}
	return orderFromStruct(out)
}

func orderFromStruct(s *structpb.Struct) (*domain.Order, error) {
	fields := s.GetFields()
	order := &domain.Order{
		ID:     fields["id"].GetStringValue(),
		Status: domain.OrderStatus(fields["status"].GetStringValue()),
	}
	if raw := fields["total"].GetStringValue(); raw != "" {
		total, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("order %s: bad total %q: %w", order.ID, raw, err)
		}
		order.Total = total
	}
	return order, nil
}
