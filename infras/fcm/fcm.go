package fcm

//go:generate go run go.uber.org/mock/mockgen -source=./fcm.go -destination=./mocks/fcm_mock.go -package=mocks

import (
	"context"
	"flexwork/config"
	"flexwork/infras/otel"
	"flexwork/shared/constant"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const otelAttrMessageID = "message_id"

// Messaging sends a single push message and returns the provider message id.
type Messaging interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type fcmImpl struct {
	client *messaging.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Messaging {
	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.External.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.External.Firebase.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.External.Firebase.ProjectID}, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Firebase messaging client")
	}

	log.Info().Str("projectId", cfg.External.Firebase.ProjectID).Msg("Firebase messaging initialized")

	return &fcmImpl{
		client: client,
		otel:   otl,
	}
}

func (f *fcmImpl) Send(ctx context.Context, message *messaging.Message) (id string, err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelFCMScopeName, constant.OtelFCMScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err = f.client.Send(ctx, message)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to send push message: %w", err)
	}

	scope.SetAttribute(otelAttrMessageID, id)

	return id, nil
}
