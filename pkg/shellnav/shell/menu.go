package shell

import (
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/navigation"
)

// MenuItem is an entry of the shell navigation menu.
type MenuItem struct {
	TitleKey string          // Localization id of the display title
	Page     navigation.Page // Page shown when the item is invoked
}

// Title returns the localized title of the item.
func (m *MenuItem) Title() string {
	if m == nil {
		return ""
	}
	return internal.Localize(m.TitleKey)
}
