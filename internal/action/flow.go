package action

// Flow names an orchestrated on-chain action.
type Flow string

const (
	FlowCapture Flow = "capture"
	FlowEvolve  Flow = "evolve"
	FlowJoin    Flow = "join"
	FlowSubmit  Flow = "submit"
)

// steps of a paid flow, in order.
type flowSteps struct {
	approve Step
	act     Step
	done    Step
	fail    Step
}

var paidSteps = map[Flow]flowSteps{
	FlowCapture: {approve: StepApproveCapture, act: StepCapture, done: StepCaptureDone, fail: StepIdle},
	FlowEvolve:  {approve: StepApproveEvolution, act: StepEvolve, done: StepEvolveDone, fail: StepEvolveFail},
	FlowJoin:    {approve: StepApproveJoin, act: StepJoin, done: StepJoinDone, fail: StepIdle},
}

// resultPath is the result page a flow hands off to; empty when the flow does not navigate.
func (f Flow) resultPath() string {
	switch f {
	case FlowCapture:
		return "/capture-result/"
	case FlowEvolve:
		return "/evolve-result/"
	case FlowJoin:
		return "/join-result/"
	default:
		return ""
	}
}
