// Package input turns Linux input device events into shell accelerators.
//
// Handheld devices without a keyboard expose their back button as a key on an
// evdev device. A Listener reads such a device and reports the back
// accelerators it sees.
package input

import (
	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/shell"
)

const (
	keyReleased int32 = 0
	keyPressed  int32 = 1
)

// Detector tracks modifier state across key events and reports accelerators
// on key press. The zero value is ready to use.
type Detector struct {
	leftAlt  bool
	rightAlt bool
}

// Feed processes one event. It returns the accelerator completed by a key
// press, if any. Key repeats and non-key events are ignored.
func (d *Detector) Feed(ev evdev.InputEvent) (shell.Accelerator, bool) {
	if ev.Type != evdev.EV_KEY {
		return shell.Accelerator{}, false
	}

	switch ev.Code {
	case evdev.KEY_LEFTALT:
		d.leftAlt = ev.Value != keyReleased
		return shell.Accelerator{}, false
	case evdev.KEY_RIGHTALT:
		d.rightAlt = ev.Value != keyReleased
		return shell.Accelerator{}, false
	}

	if ev.Value != keyPressed {
		return shell.Accelerator{}, false
	}

	switch ev.Code {
	case evdev.KEY_BACK:
		return shell.Accelerator{Key: shell.KeyGoBack, Modifiers: d.modifiers()}, true
	case evdev.KEY_LEFT:
		return shell.Accelerator{Key: shell.KeyLeft, Modifiers: d.modifiers()}, true
	default:
		return shell.Accelerator{}, false
	}
}

func (d *Detector) modifiers() shell.Modifiers {
	if d.leftAlt || d.rightAlt {
		return shell.ModAlt
	}
	return shell.ModNone
}
