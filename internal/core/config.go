package core

// RuntimeConfig contains configuration passed to the TUI at initialization.
// The platform layer uses it to adapt to terminal size and input capabilities.
type RuntimeConfig struct {
	ScreenW int  // Screen width in characters
	ScreenH int  // Screen height in characters
	Mouse   bool // Whether mouse click input is enabled
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Mouse:   true,
	}
}
