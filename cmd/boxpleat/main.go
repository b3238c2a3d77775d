// boxpleat is a command-line workbench for box-pleated crease patterns:
// validate flat-foldability, convert and normalize FOLD files, render
// patterns to PNG, watch a file for edits, or open the terminal editor.
//
// Usage:
//
//	boxpleat new -o base.fold --size 8 --template waterbomb
//	boxpleat validate "designs/**/*.fold"
//	boxpleat convert sketch.fold -o clean.fold
//	boxpleat render sketch.fold -o sketch.png --overlay
//	boxpleat watch sketch.fold
//	boxpleat edit sketch.fold
package main

func main() {
	execute()
}
