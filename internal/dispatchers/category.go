package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryWatch                         // live views of the event feed
	CategoryQuery                         // one-shot backend requests
	CategoryConfig
	CategoryTheme
	CategoryInfo // about hw itself: version, logs
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryWatch:
		return "watch the event feed"
	case CategoryQuery:
		return "query the backend"
	case CategoryConfig:
		return "configure hw"
	case CategoryTheme:
		return "customize appearance"
	case CategoryInfo:
		return "inspect hw itself"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryWatch,
	CategoryQuery,
	CategoryConfig,
	CategoryTheme,
	CategoryInfo,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
