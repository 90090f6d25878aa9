package main

import "github.com/Will-Wei7/iclr-analysis/cmd"

func main() {
	cmd.Execute()
}
