package main

import "github.com/forPelevin/naijavibe/internal/cli"

func main() {
	cli.Main()
}
