package flow

import "github.com/dmitrijs2005/clubauth/internal/client/translate"

// Phase is the position of a screen in its submission cycle.
type Phase int

const (
	Idle Phase = iota
	Submitting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of a controller. Failure is set only in Failed;
// Notice only in Succeeded, and only for screens that show one.
type State struct {
	Phase   Phase
	Failure *translate.Failure
	Notice  string
}
