package main

import "notecal/internal/cli"

func main() {
	cli.Execute()
}
