package main

import (
	"log"

	"tableflip.dev/questnote/pkg/commands"
)

func main() {
	if err := commands.NewSpanishChat().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
