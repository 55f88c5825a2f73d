// Package timeline turns events into display rows. All per-kind
// presentation lives in one table so message, icon and color cannot drift.
package timeline

import (
	"strings"

	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
)

// Presentation is how one event kind is shown.
type Presentation struct {
	Icon    string
	Paint   func(string) string
	Color   func(style.ColorConfig) string
	message func(domain.Event) string
}

var kinds = map[domain.Kind]Presentation{
	domain.KindPush: {
		Icon:  "↑",
		Paint: style.Push,
		Color: func(c style.ColorConfig) string { return c.Push },
		message: func(e domain.Event) string {
			return e.Author + " pushed to " + e.ToBranch
		},
	},
	domain.KindPullRequest: {
		Icon:  "⇄",
		Paint: style.PullRequest,
		Color: func(c style.ColorConfig) string { return c.PullRequest },
		message: func(e domain.Event) string {
			return e.Author + " submitted a pull request from " + e.FromBranch + " to " + e.ToBranch
		},
	},
	domain.KindMerge: {
		Icon:  "⑂",
		Paint: style.Merge,
		Color: func(c style.ColorConfig) string { return c.Merge },
		message: func(e domain.Event) string {
			return e.Author + " merged branch " + e.FromBranch + " to " + e.ToBranch
		},
	},
	domain.KindOther: {
		Icon:  "•",
		Paint: style.Other,
		Color: func(c style.ColorConfig) string { return c.Other },
		message: func(e domain.Event) string {
			return e.Author + " performed " + string(e.Type)
		},
	},
}

// For returns the presentation of k. Unknown values get the KindOther arm.
func For(k domain.Kind) Presentation {
	if p, ok := kinds[k]; ok {
		return p
	}
	return kinds[domain.KindOther]
}

// Message renders the one-line sentence for e.
func Message(e domain.Event) string {
	return For(e.Type.Kind()).message(e)
}

// Label is the badge text: the raw type with its first underscore
// replaced by a space ("pull_request" -> "pull request").
func Label(t domain.EventType) string {
	return strings.Replace(string(t), "_", " ", 1)
}
