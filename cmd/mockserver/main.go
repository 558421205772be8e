// Command mockserver runs the development mock of the fitness-scheduling API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/fitsched/internal/server"
	"github.com/dmitrijs2005/fitsched/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		os.Exit(1)
	}
}
