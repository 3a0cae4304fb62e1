package main

import "github.com/pengelbrecht/tally/cmd/tally/cmd"

func main() {
	cmd.Execute()
}
