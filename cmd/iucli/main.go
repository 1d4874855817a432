package main

import "iucli/cmd/cli"

func main() {
	cli.RunCLI()
}
