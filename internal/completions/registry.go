package completions

import "github.com/footprint-tools/hookwatch/internal/dispatchers"

var commandTree *dispatchers.DispatchNode

// RegisterCommandTree stores the tree built by main, since actions
// cannot import cli.
func RegisterCommandTree(root *dispatchers.DispatchNode) {
	commandTree = root
}

func CommandTree() *dispatchers.DispatchNode {
	return commandTree
}
