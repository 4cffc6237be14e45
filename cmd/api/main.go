package main

import (
	"fmt"
	"os"

	"github.com/finsight/finsight-backend/internal/cli"
	"github.com/finsight/finsight-backend/internal/infrastructure/config"
)

func main() {
	flags := cli.ParseServeFlags()

	cfg, err := config.LoadOrEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cli.RunServe(cfg, flags); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
