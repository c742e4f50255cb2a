// Package main is the entry point for the heurun CLI.
package main

import "heurun.dev/pkg/heurun/cmd"

func main() {
	cmd.Execute()
}
