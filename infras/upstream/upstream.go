// Package upstream is the bridge to the legacy PHP booking API. Every
// endpoint is a single .php file that multiplexes list/create/update/delete
// on a numeric discriminator field and answers with a {status, result|data,
// error} envelope. All wire encoding quirks stay inside this package.
package upstream

//go:generate go run go.uber.org/mock/mockgen -source=./upstream.go -destination=./mocks/upstream_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"plotdesk/config"
	"plotdesk/infras/otel"
	"plotdesk/shared/constant"
	"plotdesk/shared/failure"
	gModel "plotdesk/shared/model"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	otelScopeName = constant.OtelUpstreamScopeName
)

// Op names the four operations every legacy endpoint multiplexes. The
// numeric wire codes differ per endpoint, so each repository owns its own
// Op-to-code table and translates at the boundary.
type Op int

const (
	OpList Op = iota + 1
	OpCreate
	OpUpdate
	OpDelete
)

// File is a binary attachment for a form post, e.g. a party plot image.
type File struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// Envelope is the uniform response shape of every legacy endpoint.
type Envelope struct {
	Status gModel.FlexString `json:"status"`
	Result json.RawMessage   `json:"result"`
	Data   json.RawMessage   `json:"data"`
	Error  string            `json:"error"`
}

func (e Envelope) OK() bool {
	return e.Status.String() == constant.UpstreamStatusOK
}

// Records returns the payload array regardless of which key the endpoint
// uses: "result" for most entities, "data" for sources.
func (e Envelope) Records() json.RawMessage {
	if len(e.Result) > 0 {
		return e.Result
	}

	return e.Data
}

// Failure converts a non-OK envelope into an upstream failure, falling back
// to the given message when the endpoint sent no error string.
func (e Envelope) Failure(fallback string) error {
	msg := e.Error
	if msg == "" {
		msg = fallback
	}

	return failure.Upstream(msg) // nolint:wrapcheck
}

type Client interface {
	Post(ctx context.Context, endpoint string, fields map[string]string, files ...File) (Envelope, error)
}

type clientImpl struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	return &clientImpl{
		baseURL: strings.TrimRight(cfg.Upstream.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
		},
		otel: ot,
	}
}

// Post sends one multipart/form-data request to <base>/<endpoint> and
// decodes the envelope. A decoded envelope with status "0" is returned
// without error; the caller owns that failure path.
func (c *clientImpl) Post(ctx context.Context, endpoint string, fields map[string]string, files ...File) (env Envelope, err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Post")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"upstream.endpoint": endpoint,
		"upstream.op":       fields[constant.UpstreamFieldOp],
	})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for field, value := range fields {
		if err = writer.WriteField(field, value); err != nil {
			return env, fmt.Errorf("failed to write form field %s: %w", field, err)
		}
	}

	for _, file := range files {
		if err = writeFile(writer, file); err != nil {
			return env, err
		}
	}

	if err = writer.Close(); err != nil {
		return env, fmt.Errorf("failed to finalize form body: %w", err)
	}

	url := c.baseURL + "/" + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return env, fmt.Errorf("failed to build upstream request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("upstream request failed")

		return env, fmt.Errorf("upstream request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error().Int("code", resp.StatusCode).Str("endpoint", endpoint).Msg("unexpected upstream response code")

		return env, fmt.Errorf("unexpected upstream response code %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return env, fmt.Errorf("failed to read upstream response: %w", err)
	}

	if err = json.Unmarshal(raw, &env); err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("failed to decode upstream envelope")

		return env, fmt.Errorf("failed to decode upstream envelope: %w", err)
	}

	return env, nil
}

func writeFile(writer *multipart.Writer, file File) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Filename))
	header.Set(constant.RequestHeaderContentType, file.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create form file %s: %w", file.Field, err)
	}

	if _, err = part.Write(file.Content); err != nil {
		return fmt.Errorf("failed to write form file %s: %w", file.Field, err)
	}

	return nil
}
