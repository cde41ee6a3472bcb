// Package main provides the hueforge command-line tool.
package main

import "github.com/hueforge/hueforge/internal/cli"

func main() {
	cli.Execute()
}
