package main

import (
	"os"

	"github.com/ticketgen/ticketgen/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
