// gridcast inspects text grids from the terminal.
//
// Usage:
//
//	gridcast info <file>                         - Print dimensions and cell counts
//	gridcast show <file> [--mark x,y]            - Render the grid
//	gridcast ray <file> --from x,y --dir dx,dy   - Cast a ray and list its cells
//	gridcast regions <file> [--conn 4|8]         - List same-valued regions
//	gridcast count <file> --word XMAS            - Count a word in all eight directions
//	gridcast path <file> --from x,y --to x,y     - Shortest path avoiding walls
//	gridcast patrol <file>                       - Follow a guard until it leaves or loops
//	gridcast trails <file>                       - Score 0→9 hiking trails on a digit map
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.gridcast/config.yaml, ./gridcast.yaml)
//	--log-level <level> - debug, info, warn or error (overrides config)
//
// A file argument of "-" reads the grid from stdin.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
