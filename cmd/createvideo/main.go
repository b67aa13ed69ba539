package main

import "github.com/RenatoLagos/Create-video/internal/cli"

func main() {
	cli.Main()
}
