package storefront

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
)

const voucherFallbackMessage = "Invalid voucher code"

// VoucherValidator holds the voucher applied to the current cart. The
// discount the server returns is used as is.
type VoucherValidator struct {
	port ports.VoucherPort
	log  *logrus.Entry

	mu      sync.RWMutex
	applied *domain.AppliedVoucher
	message string
	failed  bool
}

func NewVoucherValidator(port ports.VoucherPort, log *logrus.Entry) *VoucherValidator {
	return &VoucherValidator{port: port, log: log}
}

// Apply validates code against subtotal. A rejection removes any previously
// applied voucher and keeps the server's reason as the message.
func (v *VoucherValidator) Apply(ctx context.Context, code string, subtotal decimal.Decimal) (*domain.AppliedVoucher, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		v.setFailure(domain.ErrVoucherCodeRequired.Error())
		return nil, domain.ErrVoucherCodeRequired
	}

	applied, err := v.port.ValidateVoucher(ctx, code, subtotal)
	if err != nil {
		v.setFailure(domain.UserMessage(err, voucherFallbackMessage))
		v.log.WithError(err).WithField("code", code).Info("voucher rejected")
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	cp := *applied
	v.applied = &cp
	v.message = applied.Message
	v.failed = false
	return &cp, nil
}

// Remove drops the applied voucher, resets the discount and clears messages.
func (v *VoucherValidator) Remove() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.applied = nil
	v.message = ""
	v.failed = false
}

func (v *VoucherValidator) Applied() *domain.AppliedVoucher {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.applied == nil {
		return nil
	}
	cp := *v.applied
	return &cp
}

func (v *VoucherValidator) Discount() decimal.Decimal {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.applied == nil {
		return decimal.Zero
	}
	return v.applied.Discount
}

func (v *VoucherValidator) Code() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.applied == nil {
		return ""
	}
	return v.applied.Voucher.Code
}

// Message is the last success or rejection notice; Failed tells which.
func (v *VoucherValidator) Message() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.message
}

func (v *VoucherValidator) Failed() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.failed
}

func (v *VoucherValidator) setFailure(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.applied = nil
	v.message = msg
	v.failed = true
}
