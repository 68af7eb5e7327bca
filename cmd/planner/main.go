package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"route-planner-service/internal/app"
	"route-planner-service/internal/config"
)

// planner is the interactive terminal client over the same services the HTTP
// server exposes.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	m := &menu{
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		routes:    a.Routes,
		favorites: a.Favorites,
		recs:      a.Recommendations,
		debug:     cfg.Debug,
	}
	m.run(context.Background())
}
