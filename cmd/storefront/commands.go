package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/storefront/internal/config"
	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/gateway"
	"github.com/mahabubulhasibshawon/storefront/internal/logger"
	"github.com/mahabubulhasibshawon/storefront/internal/pricing"
	"github.com/mahabubulhasibshawon/storefront/internal/storefront"
)

func describe(err error) string {
	switch {
	case gateway.IsRefreshFailure(err), errors.Is(err, domain.ErrUnauthorized):
		return "session expired, run 'storefront login'"
	case errors.Is(err, domain.ErrEmptyCart):
		return "your cart is empty"
	}
	return domain.UserMessage(err, err.Error())
}

func runInit(path, home string, args []string) error {
	cfg := config.DefaultClient(home)
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.StringVar(&cfg.API.BaseURL, "base-url", cfg.API.BaseURL, "REST API base URL")
	fs.StringVar(&cfg.API.GRPCAddr, "grpc-addr", cfg.API.GRPCAddr, "gRPC order status address")
	fs.StringVar(&cfg.Session.RedisAddr, "redis-addr", cfg.Session.RedisAddr, "keep the session in Redis instead of a file")
	fs.StringVar(&cfg.Session.ID, "session", cfg.Session.ID, "session id")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	if err := config.WriteClient(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func credentialFlags(name string, args []string) (string, string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", os.Getenv("STOREFRONT_PASSWORD"), "password (or STOREFRONT_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if *email == "" || *password == "" {
		return "", "", errors.New("-email and -password are required")
	}
	return *email, *password, nil
}

func runRegister(ctx context.Context, a *app, args []string) error {
	email, password, err := credentialFlags("register", args)
	if err != nil {
		return err
	}
	user, err := a.api.Register(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("registered %s, now run 'storefront login'\n", user.Email)
	return nil
}

func runLogin(ctx context.Context, a *app, args []string) error {
	email, password, err := credentialFlags("login", args)
	if err != nil {
		return err
	}
	user, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s\n", user.Email)
	return nil
}

func runLogout(ctx context.Context, a *app, _ []string) error {
	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	a.cart.Clear(ctx)
	fmt.Println("signed out")
	return nil
}

func printCart(lines []domain.CartLine) {
	if len(lines) == 0 {
		fmt.Println("cart is empty")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tUNIT\tLINE")
	for _, l := range lines {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", l.ID, l.Name, l.Quantity, pricing.Money(l.UnitPrice), pricing.Money(l.LineTotal()))
	}
	w.Flush()
}

func printQuote(q domain.Quote) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Subtotal (%d items)\t%s\t\n", q.ItemCount, pricing.Money(q.Subtotal))
	fmt.Fprintf(w, "Shipping\t%s\t\n", pricing.Money(q.Shipping))
	fmt.Fprintf(w, "VAT\t%s\t\n", pricing.Money(q.Tax))
	if q.Discount.IsPositive() {
		fmt.Fprintf(w, "Discount\t-%s\t\n", pricing.Money(q.Discount))
	}
	fmt.Fprintf(w, "Total\t%s\t\n", pricing.Money(q.Total))
	w.Flush()
}

func runCart(ctx context.Context, a *app, _ []string) error {
	lines, err := a.cart.Refresh(ctx)
	if err != nil {
		return err
	}
	printCart(lines)
	return nil
}

func runAdd(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	productID := fs.Int64("product", 0, "product id")
	qty := fs.Int("qty", 1, "quantity")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *productID <= 0 {
		return errors.New("-product is required")
	}
	lines, err := a.api.AddCartItem(ctx, *productID, *qty)
	if err != nil {
		return err
	}
	a.cart.Replace(ctx, lines)
	printCart(lines)
	return nil
}

func runRemove(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("remove", flag.ContinueOnError)
	productID := fs.Int64("product", 0, "product id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *productID <= 0 {
		return errors.New("-product is required")
	}
	lines, err := a.api.RemoveCartItem(ctx, *productID)
	if err != nil {
		return err
	}
	a.cart.Replace(ctx, lines)
	printCart(lines)
	return nil
}

// applyVoucher validates code against the current subtotal. Rejections are
// printed and returned.
func applyVoucher(ctx context.Context, a *app, code string) error {
	lines, err := a.cart.Lines(ctx)
	if err != nil {
		return err
	}
	subtotal := a.engine.Price(lines, decimal.Zero).Subtotal
	if _, err := a.vouchers.Apply(ctx, code, subtotal); err != nil {
		return errors.New(a.vouchers.Message())
	}
	fmt.Println(a.vouchers.Message())
	return nil
}

func runQuote(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	voucher := fs.String("voucher", "", "voucher code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := a.cart.Refresh(ctx); err != nil {
		return err
	}
	if *voucher != "" {
		if err := applyVoucher(ctx, a, *voucher); err != nil {
			return err
		}
	}
	q, err := a.checkout.Quote(ctx)
	if err != nil {
		return err
	}
	printQuote(q)
	return nil
}

func runCheckout(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	voucher := fs.String("voucher", "", "voucher code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := a.cart.Refresh(ctx); err != nil {
		return err
	}
	if *voucher != "" {
		if err := applyVoucher(ctx, a, *voucher); err != nil {
			return err
		}
	}
	receipt, err := a.checkout.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("order %s placed, total %s\n", receipt.OrderID, pricing.Money(receipt.Total))
	fmt.Printf("pay with: storefront pay -order %s -phone 07XXXXXXXX\n", receipt.OrderID)
	return nil
}

func runOrder(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	id := fs.String("id", "", "order id")
	useGRPC := fs.Bool("grpc", false, "read the status over gRPC")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("-id is required")
	}
	orders, err := a.orderPort(*useGRPC)
	if err != nil {
		return err
	}
	order, err := orders.GetOrder(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("order %s: %s, total %s\n", order.ID, order.Status, pricing.Money(order.Total))
	return nil
}

// runPay drives the payment to a terminal state, printing each state change.
// Ctrl-C cancels the client side of the attempt.
func runPay(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("pay", flag.ContinueOnError)
	id := fs.String("order", "", "order id")
	phone := fs.String("phone", "", "M-Pesa phone number")
	useGRPC := fs.Bool("grpc", false, "poll the order status over gRPC")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *phone == "" {
		return errors.New("-order and -phone are required")
	}

	orders, err := a.orderPort(*useGRPC)
	if err != nil {
		return err
	}
	order, err := orders.GetOrder(ctx, *id)
	if err != nil {
		return err
	}

	cfg := storefront.PaymentConfig{
		PollInterval: a.cfg.Payment.PollInterval,
		Deadline:     a.cfg.Payment.Deadline,
		SuccessDelay: a.cfg.Payment.SuccessDelay,
	}
	onSuccess := func(_ context.Context, orderID string) {
		fmt.Printf("order %s is paid, thank you\n", orderID)
	}
	driver := storefront.NewPaymentDriver(a.api, orders, cfg, onSuccess, logger.Component(a.log, "payment"))

	if err := driver.Submit(context.Background(), order.ID, order.Total, *phone); err != nil {
		return err
	}
	fmt.Printf("paying %s for order %s\n", pricing.Money(order.Total.Round(0)), order.ID)

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	last := storefront.PaymentIdle
	for {
		select {
		case <-ctx.Done():
			driver.Cancel()
			<-driver.Done()
			return errors.New("payment cancelled; a prompt already on your phone may still complete")
		case <-driver.Done():
			snap := driver.Snapshot()
			if snap.State == storefront.PaymentSucceeded {
				return nil
			}
			return errors.New(snap.Message)
		case <-ticker.C:
			snap := driver.Snapshot()
			if snap.State != last {
				last = snap.State
				printPaymentState(snap)
			}
		}
	}
}

func printPaymentState(s storefront.PaymentSnapshot) {
	switch s.State {
	case storefront.PaymentProcessing:
		fmt.Println("sending payment prompt...")
	case storefront.PaymentWaiting:
		fmt.Printf("check your phone and enter your M-Pesa PIN (waiting up to %s)\n", s.Remaining.Round(time.Second))
	case storefront.PaymentSucceeded:
		fmt.Println("payment received")
	default:
		if s.Message != "" {
			fmt.Println(strings.TrimSpace(s.Message))
		}
	}
}
