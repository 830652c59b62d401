package main

import "github.com/katalvlaran/centraliser/cmd/centraliser/cmd"

func main() {
	cmd.Execute()
}
