package vnpay

import "net"

const fallbackIP = "127.0.0.1"

// NormalizeClientIP maps a client address to the form the gateway accepts.
// The gateway's field holds at most 15 characters, so IPv6 addresses (and
// anything unparseable) collapse to the loopback fallback the same way
// local development traffic does.
func NormalizeClientIP(addr string) string {
	if addr == "" {
		return fallbackIP
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		return fallbackIP
	}
	if ip.IsLoopback() || ip.IsUnspecified() {
		return fallbackIP
	}
	if ip.To4() == nil || len(addr) > 15 {
		return fallbackIP
	}
	return addr
}
