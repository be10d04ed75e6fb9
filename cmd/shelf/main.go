// Command shelf is an interactive terminal manager for a small book
// collection.
package main

import "github.com/mesh-intelligence/shelf/internal/cli"

func main() {
	cli.Execute()
}
