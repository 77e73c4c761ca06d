package gateway

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/mahabubulhasibshawon/storefront/internal/metrics"
)

const authorizationMetadata = "authorization"

// UnaryClientInterceptor applies the refresh-and-replay contract to gRPC
// calls. Unauthenticated and PermissionDenied play the role of 401 and 403.
func (g *Gateway) UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if md, ok := metadata.FromOutgoingContext(ctx); ok && len(md.Get(authorizationMetadata)) > 0 {
			return invoker(ctx, method, req, reply, cc, opts...)
		}

		sent, err := g.store.Get(ctx)
		if err != nil {
			return err
		}
		err = invoker(withBearer(ctx, sent), method, req, reply, cc, opts...)
		code := status.Code(err)
		if (code != codes.Unauthenticated && code != codes.PermissionDenied) || isRetried(ctx) {
			return err
		}

		token, rerr := g.refresh(ctx, sent)
		if rerr != nil {
			return rerr
		}
		metrics.GatewayReplays.Inc()
		g.log.WithField("method", method).Debug("replaying call with refreshed credential")
		return invoker(withBearer(markRetried(ctx), token), method, req, reply, cc, opts...)
	}
}

func withBearer(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, authorizationMetadata, "Bearer "+token)
}
