package main

import "github.com/emiliopalmerini/sleepdebt/internal/cli"

func main() {
	cli.Execute()
}
