package main

import (
	"github.com/npillmayer/mathbox/engine/box"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// leveledList flattens a box tree for display.
func leveledList(root *box.Box) pterm.LeveledList {
	var list pterm.LeveledList
	root.Walk(func(b *box.Box, level int) bool {
		list = append(list, pterm.LeveledListItem{Level: level, Text: b.Label()})
		return true
	})
	return list
}

func printTree(root *box.Box) error {
	tree := putils.TreeFromLeveledList(leveledList(root))
	return pterm.DefaultTree.WithRoot(tree).Render()
}
