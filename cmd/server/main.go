package main

import (
	"context"
	"log"
	"os"

	"github.com/voclara/voclara/internal/buildinfo"
	"github.com/voclara/voclara/internal/server"
	"github.com/voclara/voclara/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
