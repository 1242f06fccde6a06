package main

import (
	"context"
	"errors"
	"flexwork/config"
	"flexwork/di"
	"flexwork/shared/logger"
	"sync"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.UseJSONOutput(cfg)
	logger.SetLogLevel(cfg)

	relay, cleanup, err := di.InitializeRelay()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize relay")
	}

	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		if err := relay.Service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("Notification listener stopped")
		}
	}()

	go func() {
		defer wg.Done()

		if err := relay.Consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("Booking event consumer stopped")
		}
	}()

	relay.HTTP.OnShutdown(func(context.Context) {
		cancel()
		wg.Wait()
		cleanup()
	})

	relay.HTTP.Serve()
}
