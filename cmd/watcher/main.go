package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/swap-fee-watcher/pkg/app"
	watcherapp "github.com/chainsafe/swap-fee-watcher/pkg/app/watcher"
	"github.com/chainsafe/swap-fee-watcher/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = watcherapp.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Watcher exited: %v\n", err)
		os.Exit(1)
	}
}
