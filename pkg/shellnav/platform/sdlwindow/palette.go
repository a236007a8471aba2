package sdlwindow

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/theme"
)

// Palette defines the colors a window uses for one requested theme.
type Palette struct {
	BackgroundColor sdl.Color // Window clear color
	TextColor       sdl.Color // Default text color
	AccentColor     sdl.Color // Selected menu item, back button
	HintColor       sdl.Color // Secondary text
}

// Palettes holds the light and dark palettes of a platform.
type Palettes struct {
	Light Palette
	Dark  Palette
}

// HexToColor converts a 0xRRGGBB value into an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 0xFF,
	}
}

// DefaultPalettes returns the built-in light and dark palettes.
func DefaultPalettes() Palettes {
	return Palettes{
		Light: Palette{
			BackgroundColor: HexToColor(0xF3F3F3),
			TextColor:       HexToColor(0x000000),
			AccentColor:     HexToColor(0x0078D4),
			HintColor:       HexToColor(0x5D5D5D),
		},
		Dark: Palette{
			BackgroundColor: HexToColor(0x202020),
			TextColor:       HexToColor(0xFFFFFF),
			AccentColor:     HexToColor(0x60CDFF),
			HintColor:       HexToColor(0xC5C5C5),
		},
	}
}

// For returns the palette of the requested theme. Default uses the dark palette.
func (p Palettes) For(t theme.Theme) Palette {
	if t == theme.Light {
		return p.Light
	}
	return p.Dark
}
