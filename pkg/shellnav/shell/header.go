package shell

// HeaderMode controls whether the shell shows a header above the page.
type HeaderMode int

const (
	HeaderAlways  HeaderMode = iota // Always show the header
	HeaderNever                     // Hide the header
	HeaderMinimal                   // Show the header only in compact layouts
)

func (m HeaderMode) String() string {
	switch m {
	case HeaderAlways:
		return "Always"
	case HeaderNever:
		return "Never"
	case HeaderMinimal:
		return "Minimal"
	default:
		return "Unknown"
	}
}

// HeaderProvider is implemented by page content that customizes the shell
// header. Content without it gets the default header in HeaderAlways mode.
type HeaderProvider interface {
	HeaderMode() HeaderMode
	// HeaderContext returns the header to show, or nil for the default header.
	HeaderContext() any
}
