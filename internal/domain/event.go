package domain

// EventType is the event_type reported by the backend. Values outside the
// known set are kept verbatim so they can still be displayed.
type EventType string

const (
	EventPush        EventType = "push"
	EventPullRequest EventType = "pull_request"
	EventMerge       EventType = "merge"
)

// Kind is the closed set of event categories the UI knows how to render.
type Kind int

const (
	KindOther Kind = iota
	KindPush
	KindPullRequest
	KindMerge
)

// Kinds lists every Kind in display order.
var Kinds = []Kind{KindPush, KindPullRequest, KindMerge, KindOther}

func (k Kind) String() string {
	switch k {
	case KindPush:
		return "push"
	case KindPullRequest:
		return "pull_request"
	case KindMerge:
		return "merge"
	default:
		return "other"
	}
}

// Kind maps the raw event type onto the closed enumeration.
func (t EventType) Kind() Kind {
	switch t {
	case EventPush:
		return KindPush
	case EventPullRequest:
		return KindPullRequest
	case EventMerge:
		return KindMerge
	default:
		return KindOther
	}
}

// Event is a single repository activity as delivered by GET /api/events.
// FromBranch is empty for pushes (the backend sends null).
type Event struct {
	Type       EventType `json:"event_type" yaml:"event_type"`
	Author     string    `json:"author" yaml:"author"`
	FromBranch string    `json:"from_branch,omitempty" yaml:"from_branch,omitempty"`
	ToBranch   string    `json:"to_branch" yaml:"to_branch"`
	Timestamp  string    `json:"timestamp" yaml:"timestamp"`
}
