package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"plotdesk/infras/otel"
	"plotdesk/infras/upstream"
	"plotdesk/internal/domains/helper/model"
	"plotdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

var opCodes = map[upstream.Op]string{
	upstream.OpList:   "1",
	upstream.OpCreate: "2",
	upstream.OpUpdate: "3",
	upstream.OpDelete: "4",
}

type Helper interface {
	GetAll(ctx context.Context) ([]model.Helper, error)
	Create(ctx context.Context, fields map[string]string) error
	Update(ctx context.Context, id string, fields map[string]string) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	client upstream.Client
	otel   otel.Otel
}

func New(client upstream.Client, otel otel.Otel) Helper {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Helper, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	env, err := r.client.Post(ctx, model.Endpoint, map[string]string{
		constant.UpstreamFieldOp: opCodes[upstream.OpList],
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list helpers: %w", err)
	}

	if !env.OK() {
		return nil, env.Failure("failed to fetch helpers") // nolint:wrapcheck
	}

	records := env.Records()
	if len(records) == 0 {
		return []model.Helper{}, nil
	}

	if err = json.Unmarshal(records, &res); err != nil {
		log.Error().Err(err).Msg("failed to decode helper records")

		return nil, fmt.Errorf("failed to decode helper records: %w", err)
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
		return fmt.Errorf("failed to create helper: %w", err)
	}

	if !env.OK() {
		return env.Failure("failed to add helper") // nolint:wrapcheck
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
		return fmt.Errorf("failed to update helper: %w", err)
	}

	if !env.OK() {
		return env.Failure("failed to update helper") // nolint:wrapcheck
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
		return fmt.Errorf("failed to delete helper: %w", err)
	}

	if !env.OK() {
		return env.Failure("failed to delete helper") // nolint:wrapcheck
	}

	return nil
}
