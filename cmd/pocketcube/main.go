// pocketcube - CLI application for solving and animating the 2x2x2 cube.
package main

import (
	"github.com/SeamusWaldron/pocketcube/internal/cli"
)

func main() {
	cli.Execute()
}
