// Package theme stores the requested application theme and applies it to every
// open view.
package theme

import (
	"strings"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"
)

// Theme is the requested appearance of the application.
type Theme int

const (
	Default Theme = iota // Follow the system appearance
	Light
	Dark
)

var names = map[Theme]string{
	Default: "Default",
	Light:   "Light",
	Dark:    "Dark",
}

// Themes returns every theme in display order.
func Themes() []Theme {
	return []Theme{Default, Light, Dark}
}

func (t Theme) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return "Unknown"
}

// DisplayName returns the localized name of the theme.
func (t Theme) DisplayName() string {
	return internal.Localize("Theme_" + t.String())
}

// Parse returns the theme with the given name, ignoring case.
func Parse(name string) (Theme, error) {
	for _, t := range Themes() {
		if strings.EqualFold(name, names[t]) {
			return t, nil
		}
	}
	return Default, errdefs.NewArgumentErrorMsg("name",
		internal.LocalizeWith("ExceptionThemeNameIsNotATheme", map[string]any{"Value": name}))
}

func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
