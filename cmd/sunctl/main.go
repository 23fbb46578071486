package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yanqian/sunsafe/internal/interface/cli"
	"github.com/yanqian/sunsafe/pkg/logger"
)

func main() {
	log := logger.NewStderr()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(log).ExecuteContext(ctx); err != nil {
		log.Error("sunctl failed", "error", err)
		stop()
		os.Exit(1)
	}
}
