package main

import (
	"github.com/octra-labs/octname/cmd"
)

func main() {
	cmd.Execute()
}
