package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"plotdesk/infras/otel"
	"plotdesk/infras/upstream"
	"plotdesk/internal/domains/partyplot/model"
	"plotdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

var opCodes = map[upstream.Op]string{
	upstream.OpList:   "1",
	upstream.OpCreate: "2",
	upstream.OpUpdate: "3",
	upstream.OpDelete: "4",
}

type PartyPlot interface {
	GetAll(ctx context.Context) ([]model.PartyPlot, error)
	Create(ctx context.Context, fields map[string]string, files ...upstream.File) error
	Update(ctx context.Context, id string, fields map[string]string, files ...upstream.File) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	client upstream.Client
	otel   otel.Otel
}

func New(client upstream.Client, otel otel.Otel) PartyPlot {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.PartyPlot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	env, err := r.client.Post(ctx, model.Endpoint, map[string]string{
		constant.UpstreamFieldOp: opCodes[upstream.OpList],
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list party plots: %w", err)
	}

	if !env.OK() {
		return nil, env.Failure("failed to fetch party plots") // nolint:wrapcheck
	}

	records := env.Records()
	if len(records) == 0 {
		return []model.PartyPlot{}, nil
	}

	if err = json.Unmarshal(records, &res); err != nil {
		log.Error().Err(err).Msg("failed to decode party plot records")

		return nil, fmt.Errorf("failed to decode party plot records: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, fields map[string]string, files ...upstream.File) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields[constant.UpstreamFieldOp] = opCodes[upstream.OpCreate]

	env, err := r.client.Post(ctx, model.Endpoint, fields, files...)
	if err != nil {
		return fmt.Errorf("failed to create party plot: %w", err)
	}

	if !env.OK() {
		return env.Failure("failed to add party plot") // nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) Update(ctx context.Context, id string, fields map[string]string, files ...upstream.File) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields[constant.UpstreamFieldOp] = opCodes[upstream.OpUpdate]
	fields[model.FieldID] = id

	env, err := r.client.Post(ctx, model.Endpoint, fields, files...)
	if err != nil {
		return fmt.Errorf("failed to update party plot: %w", err)
	}

	if !env.OK() {
		return env.Failure("failed to update party plot") // nolint:wrapcheck
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
		return fmt.Errorf("failed to delete party plot: %w", err)
	}

	if !env.OK() {
		return env.Failure("failed to delete party plot") // nolint:wrapcheck
	}

	return nil
}
