package validators

import (
	"context"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Resolver is the subset of net.Resolver the email check needs.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// EmailDomains accepts an address when its domain can receive mail: an MX
// record, or failing that any A/AAAA record.
type EmailDomains struct {
	resolver Resolver
	timeout  time.Duration
}

func NewEmailDomains(resolver Resolver, timeout time.Duration) *EmailDomains {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &EmailDomains{resolver: resolver, timeout: timeout}
}

func (v *EmailDomains) Valid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()

	if mx, err := v.resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := v.resolver.LookupIPAddr(ctx, domain)
	if err != nil {
		zap.L().Debug("email domain lookup failed", zap.String("domain", domain), zap.Error(err))
		return false
	}
	return len(ips) > 0
}
