package middleware

import (
	"net"
	"strings"

	"pumpdesk/config"
	"pumpdesk/internal/errors"

	"github.com/labstack/echo/v4"
)

// NewIPExtractor decides how c.RealIP() resolves the client address. Without
// trusted proxies the peer address is used and forwarding headers are ignored.
// Otherwise X-Forwarded-For is walked from the right and only hops inside the
// configured ranges are skipped.
func NewIPExtractor(cfg *config.Config) (echo.IPExtractor, error) {
	if len(cfg.HTTP.TrustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range cfg.HTTP.TrustedProxies {
		_, ipRange, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid trusted proxy range %q", cidr)
		}
		options = append(options, echo.TrustIPRange(ipRange))
	}

	return echo.ExtractIPFromXFFHeader(options...), nil
}
