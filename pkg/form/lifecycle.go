package form

import "github.com/goliatone/go-priceform/pkg/predict"

// Status enumerates the request lifecycle states.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Submit control labels.
const (
	LabelSubmit  = "Predict Price"
	LabelLoading = "Predicting..."
)

// Lifecycle is a snapshot of the request state. Result is non-nil only when
// Status is StatusSucceeded and Err is non-nil only when it is StatusFailed.
type Lifecycle struct {
	Status Status
	Result *predict.Result
	Err    error
}

// Loading reports whether a submission is outstanding.
func (l Lifecycle) Loading() bool {
	return l.Status == StatusLoading
}

// Message is the error line text, empty unless the lifecycle failed.
func (l Lifecycle) Message() string {
	if l.Status != StatusFailed {
		return ""
	}
	return Message(l.Err)
}

// SubmitLabel is the text the submit control shows for this state.
func (l Lifecycle) SubmitLabel() string {
	if l.Loading() {
		return LabelLoading
	}
	return LabelSubmit
}

func idle() Lifecycle {
	return Lifecycle{Status: StatusIdle}
}

func loading() Lifecycle {
	return Lifecycle{Status: StatusLoading}
}

func succeeded(result predict.Result) Lifecycle {
	return Lifecycle{Status: StatusSucceeded, Result: &result}
}

func failed(err error) Lifecycle {
	return Lifecycle{Status: StatusFailed, Err: err}
}
