// Package main is the entry point for the ArrView application.
// It initializes and runs the command-line interface for viewing
// serialized NumPy arrays as images, line plots, or scatter plots.
package main

import "github.com/hibare/ArrView/cmd"

func main() {
	cmd.Execute()
}
