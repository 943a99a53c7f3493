package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ygoproxy/ygoproxy/cmd"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cmd.Execute(ctx, version, commit)
	stop()
	os.Exit(code)
}
