package main

import (
	"os"

	"github.com/ribgsilva/note-service/app/cmd/schema"
	"github.com/ribgsilva/note-service/app/cmd/user"
)

func listCommands() {
	println("Commands")
	println("\tschema\t\t\t- Schema management")
	println("\tuser\t\t\t- Account management")
	println()
	schema.ListCommands()
	println()
	user.ListCommands()
}

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}

	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	case "user":
		user.Run(os.Args[2:])
	default:
		listCommands()
	}
}
