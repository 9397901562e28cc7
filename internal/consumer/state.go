package consumer

import (
	"errors"
	"fmt"

	"github.com/janisto/huma-greeter/internal/service/greeting"
)

// Phase is the lifecycle position of the single greeting fetch.
type Phase int

const (
	Loading Phase = iota
	Loaded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// FetchState holds the outcome of the fetch. Message is set only when
// Loaded; Reason only when Failed.
type FetchState struct {
	Phase   Phase
	Message string
	Reason  string
}

// Text is what the message line displays: the message once loaded, empty otherwise.
func (s FetchState) Text() string {
	if s.Phase == Loaded {
		return s.Message
	}
	return ""
}

func loaded(message string) FetchState {
	return FetchState{Phase: Loaded, Message: message}
}

func failed(err error) FetchState {
	var upErr *greeting.UpstreamError
	if errors.As(err, &upErr) {
		return FetchState{Phase: Failed, Reason: upErr.Reason()}
	}
	return FetchState{Phase: Failed, Reason: err.Error()}
}
