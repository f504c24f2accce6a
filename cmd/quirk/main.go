// Command quirk manages stored widgets and applies property presets to them.
package main

import "github.com/mesh-intelligence/quirk/internal/cli"

func main() {
	cli.Execute()
}
