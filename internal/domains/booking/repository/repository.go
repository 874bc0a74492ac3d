package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"plotdesk/infras/otel"
	"plotdesk/infras/upstream"
	"plotdesk/internal/domains/booking/model"
	"plotdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

// opCodes maps the operation enum to the numeric discriminators
// booking.php expects. The codes never leave this package.
var opCodes = map[upstream.Op]string{
	upstream.OpList:   "1",
	upstream.OpCreate: "2",
	upstream.OpUpdate: "3",
	upstream.OpDelete: "4",
}

type Booking interface {
	GetAll(ctx context.Context) ([]model.Booking, error)
	Create(ctx context.Context, fields map[string]string) error
	Update(ctx context.Context, id string, fields map[string]string) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	client upstream.Client
	otel   otel.Otel
}

func New(client upstream.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	env, err := r.client.Post(ctx, model.Endpoint, map[string]string{
		constant.UpstreamFieldOp: opCodes[upstream.OpList],
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	if !env.OK() {
		return nil, env.Failure("failed to fetch bookings") // nolint:wrapcheck
	}

	records := env.Records()
	if len(records) == 0 {
		return []model.Booking{}, nil
	}

	if err = json.Unmarshal(records, &res); err != nil {
		log.Error().Err(err).Msg("failed to decode booking records")

		return nil, fmt.Errorf("failed to decode booking records: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, fields map[string]string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields[constant.UpstreamFieldOp] = opCodes[upstream.OpCreate]

	env, err := r.client.Post(ctx, model.Endpoint, fields)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if !env.OK() {
		return env.Failure("failed to add booking") // nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) Update(ctx context.Context, id string, fields map[string]string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields[constant.UpstreamFieldOp] = opCodes[upstream.OpUpdate]
	fields[model.FieldID] = id

	env, err := r.client.Post(ctx, model.Endpoint, fields)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	if !env.OK() {
		return env.Failure("failed to update booking") // nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	env, err := r.client.Post(ctx, model.Endpoint, map[string]string{
		constant.UpstreamFieldOp: opCodes[upstream.OpDelete],
		model.FieldID:            id,
	})
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if !env.OK() {
		return env.Failure("failed to delete booking") // nolint:wrapcheck
	}

	return nil
}
