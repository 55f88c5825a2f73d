package dispatchers

// CommandFunc runs a resolved command with its positional args and flags.
type CommandFunc func(args []string, flags *ParsedFlags) error

// Resolution is the outcome of Dispatch. ExitCode is non-zero when the
// process should fail even though Execute succeeds (bare `hw` prints
// help and exits 1, like git).
type Resolution struct {
	Node     *DispatchNode
	Args     []string
	Flags    *ParsedFlags
	Execute  CommandFunc
	ExitCode int
}

type FlagScope int

const (
	FlagScopeGlobal FlagScope = iota
	FlagScopeLocal
)

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Scope       FlagScope
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

type DispatchNode struct {
	Name        string
	Path        []string
	Summary     string
	Usage       string
	Description string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
}
