package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/clarivue/dicomgray/cmd/dcmgray/cmd"
	"github.com/clarivue/dicomgray/pkg/logging"
)

var GitSHA string = "NA"

func main() {
	ctx, cnc := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cnc()
	go func() {
		defer cnc()
		<-ctx.Done()
	}()

	slog.SetDefault(logging.Logger(os.Stdout, false, slog.LevelInfo))
	ctx = logging.AppendCtx(ctx,
		slog.Group("dcmgray",
			slog.String("name", "dcmgray"),
			slog.String("git", GitSHA),
		))

	cmd.NewRoot(ctx, GitSHA).Execute()
}
