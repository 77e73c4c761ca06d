package domain

import "strings"

const (
	phoneCountryCode = "254"
	phoneLength      = 12
)

// NormalizePhone turns a Kenyan mobile number into the 2547XXXXXXXX form the
// push-payment provider expects.
func NormalizePhone(raw string) (string, error) {
	p := strings.NewReplacer(" ", "", "-", "", "+", "", "(", "", ")", "").Replace(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(p, "0"):
		p = phoneCountryCode + p[1:]
	case strings.HasPrefix(p, "7"), strings.HasPrefix(p, "1"):
		p = phoneCountryCode + p
	}
	if len(p) != phoneLength || !strings.HasPrefix(p, phoneCountryCode) {
		return "", ErrInvalidPhone
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return "", ErrInvalidPhone
		}
	}
	return p, nil
}

// MaskPhone keeps the last three digits for logging.
func MaskPhone(p string) string {
	if len(p) <= 3 {
		return "***"
	}
	return strings.Repeat("*", len(p)-3) + p[len(p)-3:]
}
