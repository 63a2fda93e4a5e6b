package main

import (
	"os"

	"bennypowers.dev/dtx/internal/log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
