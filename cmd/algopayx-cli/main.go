package main

import "github.com/pandodao/algopayx/cmd/algopayx-cli/cmd"

func main() {
	cmd.Execute()
}
