// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/platform/sdlwindow"
)

// Palettes returns the window palettes in Cannoli's default colors.
func Palettes() sdlwindow.Palettes {
	return sdlwindow.Palettes{
		Light: sdlwindow.Palette{
			BackgroundColor: sdlwindow.HexToColor(0xFFFFFF),
			TextColor:       sdlwindow.HexToColor(0x000000),
			AccentColor:     sdlwindow.HexToColor(0x008080),
			HintColor:       sdlwindow.HexToColor(0x000000),
		},
		Dark: sdlwindow.Palette{
			BackgroundColor: sdlwindow.HexToColor(0x000000),
			TextColor:       sdlwindow.HexToColor(0xFFFFFF),
			AccentColor:     sdlwindow.HexToColor(0x008080),
			HintColor:       sdlwindow.HexToColor(0xFFFFFF),
		},
	}
}
