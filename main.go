package main

import (
	"os"

	"github.com/abhisek/quickmaths/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
