package main

import "github.com/otisTek/miloPlot/internal/cli"

func main() {
	cli.Execute()
}
