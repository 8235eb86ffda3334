package main

import "github.com/katalvlaran/stringart/cmd/stringart/cmd"

func main() {
	cmd.Execute()
}
