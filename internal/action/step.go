package action

import (
	"github.com/pkg/errors"
)

var ErrInvalidTransition = errors.New("invalid step transition")

// Step is the single active stage of an orchestrator.
type Step int

const (
	StepIdle Step = iota
	StepApproveCapture
	StepCapture
	StepCaptureDone
	StepApproveEvolution
	StepEvolve
	StepEvolveFail
	StepEvolveDone
	StepApproveJoin
	StepJoin
	StepJoinDone
)

var stepNames = map[Step]string{
	StepIdle:             "idle",
	StepApproveCapture:   "approveCapture",
	StepCapture:          "capture",
	StepCaptureDone:      "captureDone",
	StepApproveEvolution: "approveEvolution",
	StepEvolve:           "evolve",
	StepEvolveFail:       "evolveFail",
	StepEvolveDone:       "evolveDone",
	StepApproveJoin:      "approveJoin",
	StepJoin:             "join",
	StepJoinDone:         "joinDone",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}

	return "unknown"
}

func (s Step) MarshalText() ([]byte, error) {
	if _, ok := stepNames[s]; !ok {
		return nil, errors.Errorf("unknown step %d", int(s))
	}

	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	for step, name := range stepNames {
		if name == string(text) {
			*s = step
			return nil
		}
	}

	return errors.Errorf("unknown step %q", string(text))
}

// validTransitions lists the forward edges of every flow. Returning to idle is always allowed.
var validTransitions = map[Step][]Step{
	StepIdle: {
		StepApproveCapture,
		StepCapture,
		StepApproveEvolution,
		StepEvolve,
		StepApproveJoin,
		StepJoin,
	},
	StepApproveCapture: {
		StepCapture,
	},
	StepCapture: {
		StepCaptureDone,
	},
	StepApproveEvolution: {
		StepEvolve,
	},
	StepEvolve: {
		StepEvolveDone,
		StepEvolveFail,
	},
	StepApproveJoin: {
		StepJoin,
	},
	StepJoin: {
		StepJoinDone,
	},
}

// IsTransitionAllowed reports whether moving from one step to another is valid.
func IsTransitionAllowed(from, to Step) bool {
	if to == StepIdle {
		return true
	}

	for _, step := range validTransitions[from] {
		if step == to {
			return true
		}
	}

	return false
}
