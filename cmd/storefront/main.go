package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mahabubulhasibshawon/storefront/internal/adapters/localstore"
	"github.com/mahabubulhasibshawon/storefront/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/storefront/internal/client"
	"github.com/mahabubulhasibshawon/storefront/internal/config"
	"github.com/mahabubulhasibshawon/storefront/internal/gateway"
	"github.com/mahabubulhasibshawon/storefront/internal/logger"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
	"github.com/mahabubulhasibshawon/storefront/internal/pricing"
	"github.com/mahabubulhasibshawon/storefront/internal/storefront"
)

const usage = `usage: storefront [-config path] <command> [flags]

commands:
  init       write a config file
  register   create an account
  login      sign in and store the session
  cart       show the cart
  add        add a product or change its quantity
  remove     remove a product from the cart
  quote      price the cart, optionally with a voucher
  checkout   place an order from the cart
  pay        pay for an order with an M-Pesa prompt
  order      show an order's status
  logout     end the session
`

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"register": runRegister,
	"login":    runLogin,
	"cart":     runCart,
	"add":      runAdd,
	"remove":   runRemove,
	"quote":    runQuote,
	"checkout": runCheckout,
	"pay":      runPay,
	"order":    runOrder,
	"logout":   runLogout,
}

func main() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	configPath := flag.String("config", filepath.Join(home, ".storefront", "config.yaml"), "config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	name, args := flag.Arg(0), flag.Args()[1:]

	if name == "init" {
		if err := runInit(*configPath, home, args); err != nil {
			fmt.Fprintf(os.Stderr, "init: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadClient(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.DefaultClient(home)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg.FillDefaults(home)

	a, err := newApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd(ctx, a, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", name, describe(err))
		os.Exit(1)
	}
}

// app holds the client core wired for one CLI invocation.
type app struct {
	cfg      config.ClientConfig
	log      *logrus.Logger
	store    ports.TokenStore
	gw       *gateway.Gateway
	api      *client.Client
	engine   *pricing.Engine
	cart     *storefront.CartView
	vouchers *storefront.VoucherValidator
	checkout *storefront.Checkout
	closers  []func() error
}

func newApp(cfg config.ClientConfig) (*app, error) {
	log := logger.New(cfg.LogLevel, "text")

	jar, err := localstore.NewCookieJar(cfg.Session.CookieFile, cfg.API.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	httpClient := &http.Client{
		Jar:       jar,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   30 * time.Second,
	}

	a := &app{cfg: cfg, log: log, engine: pricing.NewEngine(pricing.DefaultConfig())}

	var cache ports.CachePort
	if cfg.Session.RedisAddr != "" {
		rc := redis.NewClient(cfg.Session.RedisAddr, "", "", 0)
		a.closers = append(a.closers, rc.Close)
		a.store = redis.NewTokenStore(rc, cfg.Session.ID)
		cache = redis.NewCache(rc, 5*time.Minute)
	} else {
		a.store = localstore.NewFileTokenStore(cfg.Session.TokenFile)
	}

	refresher := &gateway.HTTPRefresher{BaseURL: cfg.API.BaseURL, Client: httpClient}
	a.gw = gateway.New(httpClient, a.store, refresher, logger.Component(log, "gateway"))
	a.api = client.New(cfg.API.BaseURL, a.gw, httpClient, a.store)

	a.cart = storefront.NewCartView(a.api, cache, cfg.Session.ID, logger.Component(log, "cart"))
	a.vouchers = storefront.NewVoucherValidator(a.api, logger.Component(log, "voucher"))
	a.checkout = storefront.NewCheckout(a.cart, a.vouchers, a.api, a.engine, logger.Component(log, "checkout"))
	return a, nil
}

// orderPort picks the gRPC order-status client when asked, REST otherwise.
func (a *app) orderPort(useGRPC bool) (ports.OrderPort, error) {
	if !useGRPC {
		return a.api, nil
	}
	oc, err := client.DialOrderStatus(a.cfg.API.GRPCAddr, a.gw)
	if err != nil {
		return nil, fmt.Errorf("dial order status: %w", err)
	}
	a.closers = append(a.closers, oc.Close)
	return oc, nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		_ = c()
	}
}
