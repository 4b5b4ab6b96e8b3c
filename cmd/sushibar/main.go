package main

import "github.com/andrescamacho/sushibar-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
