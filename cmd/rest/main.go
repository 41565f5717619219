package main

import (
	"log"

	"classico-be/internal/bootstrap"
	"classico-be/internal/config"
	"classico-be/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	// The storage backend is not touched here: the kind is decided and the
	// connection established lazily, on the first request that needs it.
	container := bootstrap.NewContainer(cfg)

	// 3. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
