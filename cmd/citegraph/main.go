package main

import (
	"os"

	mainlib "github.com/hashicorp/go-citegraph/cmd/citegraph/lib"
)

func main() {
	os.Exit(mainlib.Main(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
