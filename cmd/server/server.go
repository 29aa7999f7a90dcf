package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/fenrir-labs/lob/internal/engine"
	"github.com/fenrir-labs/lob/internal/transport"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	book := engine.NewBook("XYZ")
	srv := transport.New("0.0.0.0", 9001, book)

	go func() {
		if err := srv.Run(ctx); err != nil {
			log.Error().Err(err).Msg("transport exited")
			stop()
		}
	}()

	<-ctx.Done()
}
