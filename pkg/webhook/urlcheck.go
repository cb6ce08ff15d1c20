package webhook

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"
)

// resolveTimeout bounds the DNS lookup performed during URL vetting.
const resolveTimeout = 5 * time.Second

// URLPolicy vets webhook target URLs. The zero value is the production
// policy: https only, no address that could reach infrastructure the
// caller does not own.
type URLPolicy struct {
	// AllowLoopback permits http and loopback targets (localhost,
	// 127.0.0.1, ::1) for development and tests. Never set in
	// production.
	AllowLoopback bool
}

// Check returns an error describing why raw is not an acceptable
// delivery target. It resolves the hostname and rejects any address in
// the private, loopback, or link-local ranges.
func (p URLPolicy) Check(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("url is not parseable: %w", err)
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("url has no host")
	}

	loopbackTarget := p.AllowLoopback && isLoopbackHost(host)

	switch u.Scheme {
	case "https":
	case "http":
		if !loopbackTarget {
			return fmt.Errorf("url scheme must be https")
		}
	default:
		return fmt.Errorf("url scheme must be https, got %q", u.Scheme)
	}

	if loopbackTarget {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return fmt.Errorf("host %q does not resolve: %w", host, err)
	}

	for _, addr := range addrs {
		if reason := deniedAddress(addr.IP); reason != "" {
			return fmt.Errorf("host %q resolves to %s address %s", host, reason, addr.IP)
		}
	}
	return nil
}

// isLoopbackHost matches the literal development targets the loopback
// exception covers. Names that merely resolve to loopback do not count.
func isLoopbackHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// deniedAddress classifies addresses that must never receive webhook
// traffic: loopback, RFC1918/ULA private ranges, link-local (including
// cloud metadata at 169.254.169.254), and unspecified.
func deniedAddress(ip net.IP) string {
	switch {
	case ip.IsLoopback():
		return "loopback"
	case ip.IsPrivate():
		return "private"
	case ip.IsLinkLocalUnicast(), ip.IsLinkLocalMulticast():
		return "link-local"
	case ip.IsUnspecified():
		return "unspecified"
	}
	return ""
}
