package main

import "github.com/loadout-gg/loadout/internal/cli"

func main() {
	cli.Execute()
}
