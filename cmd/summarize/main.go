package main

import (
	"context"
	"log"

	"github.com/summarize-app/summarize/internal/cli"
	"github.com/summarize-app/summarize/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
