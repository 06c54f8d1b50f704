package deal

import "fmt"

// NotPermittedError signals a capability check failed for the acting user.
type NotPermittedError struct {
	Action string
}

func (e NotPermittedError) Error() string {
	return "not permitted: " + e.Action
}

// StageTransitionError signals an invalid lifecycle move.
type StageTransitionError struct {
	From, To string
}

func (e StageTransitionError) Error() string {
	return fmt.Sprintf("invalid stage transition from %q to %q", e.From, e.To)
}
