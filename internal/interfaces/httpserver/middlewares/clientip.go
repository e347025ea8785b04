package middlewares

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP derives the client address for rate limiting. Precedence:
// first X-Forwarded-For entry, X-Real-IP, CF-Connecting-IP, transport
// remote address, then the literal "unknown". Clients with no determinable
// address share the "unknown" bucket and its quota; that collapse is
// intentional abuse-resistance, not an oversight.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return normalizeIP(first)
		}
	}
	if real := strings.TrimSpace(r.Header.Get("X-Real-IP")); real != "" {
		return normalizeIP(real)
	}
	if cf := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); cf != "" {
		return normalizeIP(cf)
	}
	if r.RemoteAddr != "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err == nil && host != "" {
			return normalizeIP(host)
		}
		return normalizeIP(r.RemoteAddr)
	}
	return "unknown"
}

// normalizeIP collapses equivalent textual forms (IPv6-mapped IPv4 etc.)
// onto one key.
func normalizeIP(raw string) string {
	if ip := net.ParseIP(raw); ip != nil {
		return ip.String()
	}
	return raw
}
