package main

import (
	"os"

	"github.com/Joe-Degs/argp/conservation"
)

func main() {
	os.Exit(conservation.Run(os.Args[1:], os.Stdout, os.Stderr))
}
