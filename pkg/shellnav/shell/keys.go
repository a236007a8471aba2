package shell

// Key is a key the shell reacts to, independent of the input backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyGoBack // Dedicated hardware or browser back key
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModAlt Modifiers = 1 << iota
	ModCtrl
	ModShift

	ModNone Modifiers = 0
)

// Accelerator is a key combination.
type Accelerator struct {
	Key       Key
	Modifiers Modifiers
}

// BackAccelerators are the combinations that navigate back: Alt+Left and the
// back key.
var BackAccelerators = []Accelerator{
	{Key: KeyLeft, Modifiers: ModAlt},
	{Key: KeyGoBack, Modifiers: ModNone},
}

// IsBack reports whether a is one of the BackAccelerators.
func (a Accelerator) IsBack() bool {
	for _, b := range BackAccelerators {
		if a == b {
			return true
		}
	}
	return false
}
