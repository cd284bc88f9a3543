// Package main is the farmstock command.
package main

import "github.com/mesh-intelligence/farmstock/internal/cli"

func main() {
	cli.Execute()
}
