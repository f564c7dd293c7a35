package main

import (
	"os"

	"github.com/msto63/wstring/cmd/wstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
