package activation

// Kind classifies an activation event.
type Kind int

const (
	KindLaunch     Kind = iota // The application was started or relaunched by the user
	KindForeground             // The application was brought to the foreground by another source
	KindBackground             // A silent trigger that must not produce visible UI
)

// Interactive reports whether events of this kind are expected to show UI.
func (k Kind) Interactive() bool {
	return k != KindBackground
}

func (k Kind) String() string {
	switch k {
	case KindLaunch:
		return "Launch"
	case KindForeground:
		return "Foreground"
	case KindBackground:
		return "Background"
	default:
		return "Unknown"
	}
}

// ExecutionState is the state the process was in before a launch.
type ExecutionState int

const (
	StateNotRunning ExecutionState = iota
	StateRunning
	StateSuspended
	StateTerminated
	StateClosedByUser
)

func (s ExecutionState) String() string {
	switch s {
	case StateNotRunning:
		return "NotRunning"
	case StateRunning:
		return "Running"
	case StateSuspended:
		return "Suspended"
	case StateTerminated:
		return "Terminated"
	case StateClosedByUser:
		return "ClosedByUser"
	default:
		return "Unknown"
	}
}

// Event is an immutable activation event. The concrete types are LaunchEvent,
// ForegroundEvent and BackgroundEvent.
type Event interface {
	Kind() Kind
}

// LaunchEvent is delivered when the application is launched.
// An empty Arguments string means the launch carried no argument.
type LaunchEvent struct {
	Arguments          string
	PrelaunchActivated bool
	PreviousState      ExecutionState
}

func (LaunchEvent) Kind() Kind { return KindLaunch }

// ForegroundEvent is delivered when another source, such as a notification or a
// protocol handler, brings the application to the foreground.
type ForegroundEvent struct {
	Source string
}

func (ForegroundEvent) Kind() Kind { return KindForeground }

// BackgroundEvent is delivered for silent work such as a scheduled task.
type BackgroundEvent struct {
	Task string
}

func (BackgroundEvent) Kind() Kind { return KindBackground }

// argument returns the navigation argument carried by ev, or nil.
func argument(ev Event) any {
	if launch, ok := ev.(LaunchEvent); ok && launch.Arguments != "" {
		return launch.Arguments
	}
	return nil
}
