// Package gateway keeps the access credential valid across every
// authenticated call.
//
// Each call carries the stored credential. When the backend answers 401 or
// 403 the gateway refreshes the credential once and replays the call once
// with the new value. Concurrent failures share a single refresh: the first
// caller runs it and the rest wait for its result.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/metrics"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
)

const (
	authorizationHeader = "Authorization"
	refreshKey          = "refresh"

	DefaultRefreshTimeout = 10 * time.Second
)

// Refresher exchanges the out-of-band refresh secret for a new access token.
type Refresher interface {
	Refresh(ctx context.Context) (string, error)
}

type Gateway struct {
	client         *http.Client
	store          ports.TokenStore
	refresher      Refresher
	refreshTimeout time.Duration
	group          singleflight.Group
	log            *logrus.Entry
}

func New(client *http.Client, store ports.TokenStore, refresher Refresher, log *logrus.Entry) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{
		client:         client,
		store:          store,
		refresher:      refresher,
		refreshTimeout: DefaultRefreshTimeout,
		log:            log,
	}
}

type retriedKey struct{}

// markRetried flags a context as belonging to a replayed call.
func markRetried(ctx context.Context) context.Context {
	return context.WithValue(ctx, retriedKey{}, true)
}

func isRetried(ctx context.Context) bool {
	v, _ := ctx.Value(retriedKey{}).(bool)
	return v
}

func isAuthFailure(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// Do sends req with the stored credential. A caller-supplied Authorization
// header is left alone and such requests are never refreshed or replayed.
func (g *Gateway) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if req.Header.Get(authorizationHeader) != "" {
		return g.client.Do(req)
	}

	sent, err := g.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}

	out := req.Clone(ctx)
	setBearer(out, sent)
	resp, err := g.client.Do(out)
	if err != nil {
		return nil, err
	}
	if !isAuthFailure(resp.StatusCode) || isRetried(ctx) {
		return resp, nil
	}

	replay, ok := rewind(req)
	if !ok {
		g.log.WithField("url", req.URL.Path).Warn("authorization failed on a request with a non-rewindable body, not replaying")
		return resp, nil
	}
	drain(resp)

	token, err := g.refresh(ctx, sent)
	if err != nil {
		return nil, err
	}

	replay = replay.WithContext(markRetried(ctx))
	setBearer(replay, token)
	metrics.GatewayReplays.Inc()
	g.log.WithField("url", req.URL.Path).Debug("replaying request with refreshed credential")
	return g.client.Do(replay)
}

// refresh runs at most one refresh at a time. sent is the credential the
// failed call carried; if the store already holds a different one, another
// caller refreshed in the meantime and that value is reused.
func (g *Gateway) refresh(ctx context.Context, sent string) (string, error) {
	v, err, shared := g.group.Do(refreshKey, func() (interface{}, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.refreshTimeout)
		defer cancel()

		current, err := g.store.Get(rctx)
		if err != nil {
			return "", fmt.Errorf("read credential: %w", err)
		}
		if current != "" && current != sent {
			metrics.GatewayRefreshes.WithLabelValues("reused").Inc()
			return current, nil
		}

		g.log.Debug("refreshing access credential")
		token, err := g.refresher.Refresh(rctx)
		if err != nil {
			metrics.GatewayRefreshes.WithLabelValues("failed").Inc()
			g.log.WithError(err).Warn("credential refresh failed")
			return "", err
		}
		if err := g.store.Set(rctx, token); err != nil {
			metrics.GatewayRefreshes.WithLabelValues("failed").Inc()
			return "", fmt.Errorf("store credential: %w", err)
		}
		metrics.GatewayRefreshes.WithLabelValues("ok").Inc()
		return token, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrRefreshFailed, err)
	}
	if shared {
		g.log.Debug("joined in-flight credential refresh")
	}
	return v.(string), nil
}

func setBearer(req *http.Request, token string) {
	if token == "" {
		req.Header.Del(authorizationHeader)
		return
	}
	req.Header.Set(authorizationHeader, "Bearer "+token)
}

// rewind returns a fresh copy of req with its body reset.
func rewind(req *http.Request) (*http.Request, bool) {
	out := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return out, true
	}
	if req.GetBody == nil {
		return nil, false
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, false
	}
	out.Body = body
	return out, true
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}

// IsRefreshFailure reports whether err means the session must be
// re-authenticated.
func IsRefreshFailure(err error) bool {
	return errors.Is(err, domain.ErrRefreshFailed)
}
