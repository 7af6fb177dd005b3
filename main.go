package main

import "github.com/ciscomonkey/jira-scripts/cmd"

func main() {
	cmd.Execute()
}
