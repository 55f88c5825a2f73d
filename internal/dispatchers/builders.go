package dispatchers

// NewNode creates a node and, when parent is set, attaches it.
func NewNode(
	name string,
	parent *DispatchNode,
	summary string,
	usage string,
	flags []FlagDescriptor,
	args []ArgSpec,
	action CommandFunc,
) *DispatchNode {
	node := &DispatchNode{
		Name:     name,
		Summary:  summary,
		Usage:    usage,
		Flags:    flags,
		Args:     args,
		Action:   action,
		Children: make(map[string]*DispatchNode),
	}

	if parent == nil {
		node.Path = []string{name}
	} else {
		node.Path = append(append([]string(nil), parent.Path...), name)
		parent.Children[name] = node
	}

	return node
}

func Root(spec RootSpec) *DispatchNode {
	return NewNode(spec.Name, nil, spec.Summary, spec.Usage, spec.Flags, nil, nil)
}

func Group(spec GroupSpec) *DispatchNode {
	node := NewNode(spec.Name, spec.Parent, spec.Summary, spec.Usage, nil, nil, nil)
	node.Description = spec.Description
	return node
}

func Command(spec CommandSpec) *DispatchNode {
	node := NewNode(spec.Name, spec.Parent, spec.Summary, spec.Usage, spec.Flags, spec.Args, spec.Action)
	node.Description = spec.Description
	node.Category = spec.Category
	return node
}
