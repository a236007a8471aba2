package navigation

import "github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"

// Subscription identifies a registered event handler.
type Subscription = internal.Subscription

// Mode describes how a navigation moved through the history.
type Mode int

const (
	ModeNew     Mode = iota // A new page was pushed; forward history was cleared
	ModeBack                // The previous history entry was restored
	ModeForward             // The next history entry was restored
)

func (m Mode) String() string {
	switch m {
	case ModeNew:
		return "New"
	case ModeBack:
		return "Back"
	case ModeForward:
		return "Forward"
	default:
		return "Unknown"
	}
}

// Transition is the animation hint carried with a navigation.
// Presentation layers decide how, or whether, to honor it.
type Transition int

const (
	TransitionDefault Transition = iota
	TransitionSuppress
	TransitionEntrance
	TransitionDrillIn
	TransitionSlideFromRight
	TransitionSlideFromLeft
)

// NavigatedEvent describes a completed navigation.
type NavigatedEvent struct {
	Page       Page
	Parameter  any
	Content    any
	Mode       Mode
	Transition Transition
}

// NavigationFailedEvent describes a navigation the frame could not complete.
// Err is always an *errdefs.NavigationError.
type NavigationFailedEvent struct {
	Page Page
	Err  error
}

// NavigatedFunc handles a completed navigation on the sending frame.
type NavigatedFunc func(sender *Frame, e NavigatedEvent)

// NavigationFailedFunc handles a failed navigation on the sending frame.
type NavigationFailedFunc func(sender *Frame, e NavigationFailedEvent)
