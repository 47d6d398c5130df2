// Package behavior defines the sheep behavior state machine's data
// types: the tagged Behavior sum and the BehaviorState component that
// pairs it with the stage's next-check countdown (spec §3, §4.3).
package behavior

// Kind discriminates the Behavior sum.
type Kind int

const (
	Stationary Kind = iota
	Walking
	Running
)

func (k Kind) String() string {
	switch k {
	case Stationary:
		return "Stationary"
	case Walking:
		return "Walking"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}

// Behavior is the tagged sum described in spec §3: Stationary carries
// whether the most recent transition arrived from Running; Walking and
// Running carry no extra data.
type Behavior struct {
	Kind                 Kind
	WasRunningLastUpdate bool // only meaningful when Kind == Stationary
}

// NewStationary builds a Stationary behavior, recording whether the
// transition into it came from Running.
func NewStationary(wasRunning bool) Behavior {
	return Behavior{Kind: Stationary, WasRunningLastUpdate: wasRunning}
}

// NewWalking builds a Walking behavior.
func NewWalking() Behavior {
	return Behavior{Kind: Walking}
}

// NewRunning builds a Running behavior.
func NewRunning() Behavior {
	return Behavior{Kind: Running}
}

// CheckPeriodMillis is the interval at which a behavior re-evaluates its
// stochastic transition, per spec §4.3 (~1 Hz).
const CheckPeriodMillis = 1000

// State is the BehaviorState component: the current Behavior plus a
// countdown to the next re-evaluation.
type State struct {
	Behavior        Behavior
	NextCheckMillis int32
}

// NewState returns a freshly-created agent's behavior state, with the
// countdown reset to the full check period.
func NewState(b Behavior) State {
	return State{Behavior: b, NextCheckMillis: CheckPeriodMillis}
}
