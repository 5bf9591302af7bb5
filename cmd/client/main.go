package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/recordsync/internal/buildinfo"
	"github.com/dmitrijs2005/recordsync/internal/client/cli"
	"github.com/dmitrijs2005/recordsync/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
