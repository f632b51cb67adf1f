package main

import (
	"os"

	"github.com/theapemachine/webtool/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
