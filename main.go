package main

import "github.com/itsmostafa/docindex/cmd"

func main() {
	cmd.Execute()
}
