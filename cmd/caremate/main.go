package main

import (
	"context"
	"log"
	"os"

	"github.com/caremate-ai/caremate/internal/buildinfo"
	"github.com/caremate-ai/caremate/internal/client/cli"
	"github.com/caremate-ai/caremate/internal/client/config"
	"github.com/caremate-ai/caremate/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTintLogger()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
