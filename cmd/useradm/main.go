package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/voclara/voclara/internal/buildinfo"
	"github.com/voclara/voclara/internal/flagx"
	"github.com/voclara/voclara/internal/server/config"
	"github.com/voclara/voclara/internal/useradm"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// Server config flags are parsed separately; only pick up our own here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-email", "-name"})

	fs := flag.NewFlagSet("useradm", flag.ExitOnError)
	email := fs.String("email", "", "admin account email")
	name := fs.String("name", "Administrator", "admin display name")
	_ = fs.Parse(args)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := useradm.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx, *email, *name); err != nil {
		log.Fatalf("%v", err)
	}

}
