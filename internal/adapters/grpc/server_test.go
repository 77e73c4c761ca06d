package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/mahabubulhasibshawon/storefront/internal/application"
	"github.com/mahabubulhasibshawon/storefront/internal/client"
	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/logger"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
	"github.com/mahabubulhasibshawon/storefront/internal/pricing"
	"github.com/mahabubulhasibshawon/storefront/pkg/auth"
)

const bufSize = 1024 * 1024

func setupTestServer(t *testing.T, repo ports.OrderRepositoryPort, issuer *auth.Issuer) *grpc.ClientConn {
	lis := bufconn.Listen(bufSize)

	ctrl := gomock.NewController(t)
	cache := ports.NewMockCachePort(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("miss")).AnyTimes()
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	log := logger.Discard()
	orders := application.NewOrderService(repo, application.NewVoucherService(nil), pricing.NewEngine(pricing.DefaultConfig()), cache, log)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(AuthInterceptor(issuer, healthpb.Health_Check_FullMethodName)))
	RegisterOrderStatusServer(grpcServer, NewServer(orders, log))
	healthpb.RegisterHealthServer(grpcServer, health.NewServer())
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("Server failed: %v", err)
		}
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func withToken(t *testing.T, issuer *auth.Issuer, userID int64) context.Context {
	token, err := issuer.GenerateToken(userID, "shopper@example.com", domain.RoleCustomer)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestOrderStatus_GetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := ports.NewMockOrderRepositoryPort(ctrl)
	issuer := auth.NewIssuer("test-secret", time.Minute)
	conn := setupTestServer(t, repo, issuer)
	orders := client.NewOrderStatusClient(conn)

	paid := &domain.Order{ID: "ord-1", UserID: 7, Total: decimal.RequireFromString("1391.5"), Status: domain.OrderPaid}

	tests := []struct {
		name      string
		orderID   string
		mockSetup func()
		wantCode  codes.Code
		wantErrIs error
	}{
		{
			name:    "Success",
			orderID: "ord-1",
			mockSetup: func() {
				repo.EXPECT().GetOrder(gomock.Any(), "ord-1", int64(7)).Return(paid, nil)
			},
			wantCode: codes.OK,
		},
		{
			name:    "Not found",
			orderID: "ord-2",
			mockSetup: func() {
				repo.EXPECT().GetOrder(gomock.Any(), "ord-2", int64(7)).Return(nil, domain.ErrNotFound)
			},
			wantCode:  codes.NotFound,
			wantErrIs: domain.ErrNotFound,
		},
		{
			name:    "Repository error",
			orderID: "ord-3",
			mockSetup: func() {
				repo.EXPECT().GetOrder(gomock.Any(), "ord-3", int64(7)).Return(nil, errors.New("db down"))
			},
			wantCode: codes.Internal,
		},
		{
			name:      "Empty id",
			orderID:   " ",
			mockSetup: func() {},
			wantCode:  codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			order, err := orders.GetOrder(withToken(t, issuer, 7), tt.orderID)
			if tt.wantCode == codes.OK {
				require.NoError(t, err)
				assert.Equal(t, "ord-1", order.ID)
				assert.Equal(t, domain.OrderPaid, order.Status)
				assert.True(t, order.Total.Equal(decimal.RequireFromString("1391.5")))
				return
			}
			require.Error(t, err)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}

func TestAuthInterceptor(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := ports.NewMockOrderRepositoryPort(ctrl)
	issuer := auth.NewIssuer("test-secret", time.Minute)
	conn := setupTestServer(t, repo, issuer)
	orders := client.NewOrderStatusClient(conn)

	expired, err := auth.NewIssuer("test-secret", -time.Minute).GenerateToken(7, "shopper@example.com", domain.RoleCustomer)
	require.NoError(t, err)

	tests := []struct {
		name    string
		ctx     context.Context
		wantMsg string
	}{
		{name: "No metadata", ctx: context.Background(), wantMsg: "missing"},
		{name: "Expired", ctx: metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+expired), wantMsg: "token expired"},
		{name: "Garbage", ctx: metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer nope"), wantMsg: "invalid token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := orders.GetOrder(tt.ctx, "ord-1")
			require.Error(t, err)
			st, _ := status.FromError(err)
			assert.Equal(t, codes.Unauthenticated, st.Code())
			assert.Contains(t, st.Message(), tt.wantMsg)
		})
	}
}

func TestAuthInterceptor_PublicMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := setupTestServer(t, ports.NewMockOrderRepositoryPort(ctrl), auth.NewIssuer("test-secret", time.Minute))

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
