package main

import (
	"os"

	"github.com/flowscan-io/flowscan/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
