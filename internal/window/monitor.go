package window

import (
	"fmt"
	"strings"

	"github.com/avct/uasurfer"
)

// MonitorHandle stands in for the single display a browser page can see.
// It has no geometry and a fixed scale factor.
type MonitorHandle struct {
	userAgent string
}

func (m MonitorHandle) HiDPIFactor() float64 {
	return 1.0
}

// Name describes the browser showing the page, or "" if the user agent was
// not available.
func (m MonitorHandle) Name() string {
	if m.userAgent == "" {
		return ""
	}
	ua := uasurfer.Parse(m.userAgent)
	return fmt.Sprintf("%s on %s (%s)",
		strings.TrimPrefix(ua.Browser.Name.String(), "Browser"),
		strings.TrimPrefix(ua.OS.Name.String(), "OS"),
		strings.TrimPrefix(ua.DeviceType.String(), "Device"),
	)
}

// Position is never known for a browser page.
func (m MonitorHandle) Position() (LogicalPosition, bool) {
	return LogicalPosition{}, false
}

// Dimensions is never known for a browser page.
func (m MonitorHandle) Dimensions() (LogicalSize, bool) {
	return LogicalSize{}, false
}
