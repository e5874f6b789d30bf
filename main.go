package main

import "registrylint/internal/cli"

func main() {
	cli.Execute()
}
