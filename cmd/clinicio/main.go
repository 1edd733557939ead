package main

import "github.com/clinicio/clinicio/internal/cli"

func main() {
	cli.Execute()
}
