package main

import (
	"os"

	"github.com/ayoubsiyari/full-talaria-log--sub003/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
