package main

import "github.com/provkit/provision/internal/cli"

func main() {
	cli.Execute()
}
