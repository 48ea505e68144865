package fleet

import "fmt"

// Action is the kind of change a Plan makes.
type Action int

// Plan actions.
const (
	NoOp Action = iota
	ScaleUp
	ScaleDown
)

func (a Action) String() string {
	switch a {
	case ScaleUp:
		return "scale-up"
	case ScaleDown:
		return "scale-down"
	default:
		return "no-op"
	}
}

// Plan is the outcome of comparing the desired count with a snapshot.
// Count is zero for NoOp and positive otherwise.
type Plan struct {
	Action Action
	Count  int
}

// String describes the plan for the operator.
func (p Plan) String() string {
	switch p.Action {
	case ScaleUp:
		return fmt.Sprintf("Spinning up %d %s", p.Count, servers(p.Count))
	case ScaleDown:
		return fmt.Sprintf("Spinning down %d %s", p.Count, servers(p.Count))
	default:
		return "Nothing to do"
	}
}

func servers(n int) string {
	if n == 1 {
		return "server"
	}
	return "servers"
}

// Reconcile compares desired with the number of managed servers.
func Reconcile(desired uint16, managed []Instance) Plan {
	delta := int(desired) - len(managed)
	switch {
	case delta > 0:
		return Plan{Action: ScaleUp, Count: delta}
	case delta < 0:
		return Plan{Action: ScaleDown, Count: -delta}
	default:
		return Plan{Action: NoOp}
	}
}
