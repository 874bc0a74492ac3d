package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"plotdesk/config"
	"plotdesk/infras/otel"
	"plotdesk/infras/upstream"
	"plotdesk/internal/domains/source/model"
	"plotdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

// source.php numbered its operations in a different order than every other
// endpoint, and scopes list and delete by company.
var opCodes = map[upstream.Op]string{
	upstream.OpList:   "4",
	upstream.OpCreate: "1",
	upstream.OpUpdate: "2",
	upstream.OpDelete: "3",
}

type Source interface {
	GetAll(ctx context.Context) ([]model.Source, error)
	Create(ctx context.Context, fields map[string]string) error
	Update(ctx context.Context, id string, fields map[string]string) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	client    upstream.Client
	companyID string
	otel      otel.Otel
}

func New(client upstream.Client, cfg *config.Config, otel otel.Otel) Source {
	return &repositoryImpl{
		client:    client,
		companyID: cfg.Upstream.CompanyID,
		otel:      otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Source, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	env, err := r.client.Post(ctx, model.Endpoint, map[string]string{
		constant.UpstreamFieldOp:        opCodes[upstream.OpList],
		constant.UpstreamFieldCompanyID: r.companyID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	if !env.OK() {
		return nil, env.Failure("failed to fetch sources") // nolint:wrapcheck
	}

	records := env.Records()
	if len(records) == 0 {
		return []model.Source{}, nil
	}

	if err = json.Unmarshal(records, &res); err != nil {
		log.Error().Err(err).Msg("failed to decode source records")

		return nil, fmt.Errorf("failed to decode source records: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, fields map[string]string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields[constant.UpstreamFieldOp] = opCodes[upstream.OpCreate]
	fields[constant.UpstreamFieldCompanyID] = r.companyID

	env, err := r.client.Post(ctx, model.Endpoint, fields)
	if err != nil {
		return fmt.Errorf("failed to create source: %w", err)
	}

	if !env.OK() {
		return env.Failure("failed to add source") // nolint:wrapcheck
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
		return fmt.Errorf("failed to update source: %w", err)
	}

	if !env.OK() {
		return env.Failure("failed to update source") // nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	env, err := r.client.Post(ctx, model.Endpoint, map[string]string{
		constant.UpstreamFieldOp:        opCodes[upstream.OpDelete],
		constant.UpstreamFieldCompanyID: r.companyID,
		model.FieldID:                   id,
	})
	if err != nil {
		return fmt.Errorf("failed to delete source: %w", err)
	}

	if !env.OK() {
		return env.Failure("failed to delete source") // nolint:wrapcheck
	}

	return nil
}
