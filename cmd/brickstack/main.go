// Command brickstack settles a stack of falling bricks and analyzes which
// bricks hold the others up.
//
// Usage:
//
//	brickstack removable -i bricks.txt          # count of safely removable bricks
//	brickstack removable -i bricks.txt --list   # ... and which ones
//	brickstack settle -i bricks.txt             # settled positions
//	brickstack cascade -i bricks.txt            # total bricks toppled, over every removal
//	brickstack graph -i bricks.txt -o json      # supports / supported-by per brick
//
// Input is one brick per line, "x1,y1,z1~x2,y2,z2", optionally followed by
// "<- label". Without -i (or with -i -) bricks are read from standard input.
// Settings may also come from a YAML file given with --config; flags win.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
