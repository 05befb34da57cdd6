package main

import (
	"log"

	"github.com/leminhohoho/movie-lens/api/pkg/app"
	"github.com/leminhohoho/movie-lens/api/pkg/config"
)

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.NewAppConfig()
	if err != nil {
		log.Fatal(err)
	}

	app, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	err = app.Run()
	app.Close()

	if err != nil {
		log.Fatal(err)
	}
}
