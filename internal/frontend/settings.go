// Package frontend holds the preferences shared by LiveSpiff front
// ends. The daemon never reads these: poll cadence and window-pick
// state are presentation concerns.
package frontend

import "time"

const (
	// MinRefreshInterval is the fastest allowed poll cadence.
	MinRefreshInterval = 10 * time.Millisecond
	// MaxRefreshInterval is the slowest allowed poll cadence.
	MaxRefreshInterval = 1000 * time.Millisecond
)

// Settings defines editable front-end preferences.
type Settings struct {
	AlwaysOnTop     bool
	RefreshInterval time.Duration

	// Last game window picked by the user, kept so a front end can
	// re-attach across restarts.
	PickedWindowID    string
	PickedClassName   string
	PickedWindowTitle string
	PickedPID         int
}

// DefaultSettings returns default front-end settings.
func DefaultSettings() Settings {
	return Settings{
		AlwaysOnTop:     false,
		RefreshInterval: 50 * time.Millisecond,
		PickedPID:       -1,
	}
}

// ClampRefresh bounds the refresh interval to the supported range.
func (settings *Settings) ClampRefresh() {
	if settings.RefreshInterval < MinRefreshInterval {
		settings.RefreshInterval = MinRefreshInterval
	}
	if settings.RefreshInterval > MaxRefreshInterval {
		settings.RefreshInterval = MaxRefreshInterval
	}
}
