package main

import (
	"os"
)

func main() {
	out := newPrinter(os.Stdout, os.Stderr)
	if err := newRootCmd(out).Execute(); err != nil {
		out.Error(err.Error())
		os.Exit(1)
	}
}
