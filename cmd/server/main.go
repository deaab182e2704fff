package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/nmatjar/HashEmpire/internal/game"
	"github.com/nmatjar/HashEmpire/internal/leaderboard"
	"github.com/nmatjar/HashEmpire/internal/server"
)

func main() {
	port := flag.Int("port", 3001, "HTTP listen port")
	dataDir := flag.String("data-dir", "data", "path to data directory")
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	repo, err := leaderboard.OpenSQLite(filepath.Join(*dataDir, "scores.db"))
	if err != nil {
		log.Fatalf("open scores db: %v", err)
	}
	defer repo.Close()

	saves, err := game.NewFileSaveRepo(*dataDir)
	if err != nil {
		log.Fatalf("open save store: %v", err)
	}

	svc := leaderboard.NewService(repo)
	handler := server.New(svc, saves)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("ranking service listening on %s (data dir %s)", addr, *dataDir)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
