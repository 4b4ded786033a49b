package main

import "github.com/metascope/metascope-cli/cmd"

func main() {
	cmd.Execute()
}
