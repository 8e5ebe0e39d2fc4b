package scan

import (
	"strings"

	"github.com/partyqr/qr-router/internal/domain"
)

var (
	botMarkers    = []string{"bot", "crawler", "spider", "slurp", "facebookexternalhit", "whatsapp", "preview", "curl", "wget", "python-requests", "go-http-client"}
	tabletMarkers = []string{"ipad", "tablet", "kindle", "silk", "playbook"}
	mobileMarkers = []string{"mobi", "iphone", "ipod", "android", "windows phone", "blackberry", "opera mini"}
)

// ClassifyDevice derives a coarse device class from a user agent
func ClassifyDevice(userAgent string) domain.DeviceClass {
	ua := strings.ToLower(strings.TrimSpace(userAgent))
	if ua == "" {
		return domain.DeviceClassUnknown
	}

	switch {
	case containsAny(ua, botMarkers):
		return domain.DeviceClassBot
	case containsAny(ua, tabletMarkers):
		return domain.DeviceClassTablet
	// Android tablets omit "mobile" from their user agent
	case strings.Contains(ua, "android") && !strings.Contains(ua, "mobile"):
		return domain.DeviceClassTablet
	case containsAny(ua, mobileMarkers):
		return domain.DeviceClassMobile
	case strings.Contains(ua, "mozilla") || strings.Contains(ua, "windows") || strings.Contains(ua, "macintosh") || strings.Contains(ua, "linux"):
		return domain.DeviceClassDesktop
	default:
		return domain.DeviceClassUnknown
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
