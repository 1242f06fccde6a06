package di

import (
	"context"
	"flexwork/config"
	"flexwork/infras/kafka"
	"flexwork/infras/otel"
	relayService "flexwork/internal/domains/relay/service"
	"flexwork/internal/events"
	"flexwork/shared/eventbus"
	"flexwork/transport/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

// Relay is everything the relay binary runs side by side.
type Relay struct {
	HTTP     *http.HTTP
	Service  relayService.Relay
	Consumer *events.Consumer
}

func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	o := otel.New(cfg)

	return o, func() {
		if err := o.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")
		}
	}
}

func provideKafka(cfg *config.Config) (kafka.Client, func()) {
	client := kafka.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}
}

func provideBanners() (*eventbus.Bus[events.Banner], func()) {
	bus := eventbus.New[events.Banner](eventbus.DefaultBuffer)

	return bus, bus.Close
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func provideBookingEventHandler(relay relayService.Relay) events.BookingEventHandler {
	return relay
}
