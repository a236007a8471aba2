package sdlwindow

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/shell"
)

// acceleratorFor maps an SDL key press to a shell accelerator.
func acceleratorFor(sym sdl.Keycode, mod uint16) (shell.Accelerator, bool) {
	var key shell.Key
	switch sym {
	case sdl.K_LEFT:
		key = shell.KeyLeft
	case sdl.K_AC_BACK:
		key = shell.KeyGoBack
	default:
		return shell.Accelerator{}, false
	}

	var mods shell.Modifiers
	if mod&uint16(sdl.KMOD_ALT) != 0 {
		mods |= shell.ModAlt
	}
	if mod&uint16(sdl.KMOD_CTRL) != 0 {
		mods |= shell.ModCtrl
	}
	if mod&uint16(sdl.KMOD_SHIFT) != 0 {
		mods |= shell.ModShift
	}
	return shell.Accelerator{Key: key, Modifiers: mods}, true
}

// controllerAccelerator maps a game controller button press to a shell accelerator.
func controllerAccelerator(button uint8) (shell.Accelerator, bool) {
	if button == uint8(sdl.CONTROLLER_BUTTON_BACK) || button == uint8(sdl.CONTROLLER_BUTTON_B) {
		return shell.Accelerator{Key: shell.KeyGoBack}, true
	}
	return shell.Accelerator{}, false
}
