package upstream_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotdesk/config"
	"plotdesk/infras/otel/mocks"
	"plotdesk/infras/upstream"
)

func newClient(t *testing.T, handler http.HandlerFunc) upstream.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = server.URL + "/"
	cfg.Upstream.TimeoutSeconds = 5

	return upstream.New(cfg, mocks.NewOtel())
}

func TestPost(t *testing.T) {
	t.Run("sends multipart form and decodes result envelope", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/booking.php", r.URL.Path)

			require.NoError(t, r.ParseMultipartForm(10<<20))
			assert.Equal(t, "1", r.FormValue("type"))
			assert.Equal(t, "Ramesh Patel", r.FormValue("customer_name"))

			_, _ = w.Write([]byte(`{"status":"1","result":[{"id":1},{"id":"2"}]}`))
		})

		env, err := client.Post(context.Background(), "booking.php", map[string]string{
			"type":          "1",
			"customer_name": "Ramesh Patel",
		})

		assert.NoError(t, err)
		assert.True(t, env.OK())
		assert.JSONEq(t, `[{"id":1},{"id":"2"}]`, string(env.Records()))
	})

	t.Run("reads data key when result is absent", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"1","data":[{"source_id":"3","source_name":"Instagram"}]}`))
		})

		env, err := client.Post(context.Background(), "source.php", map[string]string{"type": "4"})

		assert.NoError(t, err)
		assert.True(t, env.OK())
		assert.JSONEq(t, `[{"source_id":"3","source_name":"Instagram"}]`, string(env.Records()))
	})

	t.Run("tolerates numeric status", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":1,"result":[]}`))
		})

		env, err := client.Post(context.Background(), "helper.php", map[string]string{"type": "1"})

		assert.NoError(t, err)
		assert.True(t, env.OK())
	})

	t.Run("rejection envelope is not an error", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"0","error":"Invalid request"}`))
		})

		env, err := client.Post(context.Background(), "booking.php", map[string]string{"type": "2"})

		assert.NoError(t, err)
		assert.False(t, env.OK())
		assert.EqualError(t, env.Failure("failed to add booking"), "Invalid request")
	})

	t.Run("rejection without error string uses fallback", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"0"}`))
		})

		env, err := client.Post(context.Background(), "booking.php", map[string]string{"type": "4"})

		assert.NoError(t, err)
		assert.EqualError(t, env.Failure("failed to delete booking"), "failed to delete booking")
	})

	t.Run("uploads file parts", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(10<<20))
			assert.Equal(t, "Sunrise Lawn", r.FormValue("name"))

			file, header, err := r.FormFile("images")
			require.NoError(t, err)
			defer func() { _ = file.Close() }()

			content, err := io.ReadAll(file)
			require.NoError(t, err)

			assert.Equal(t, "plot.jpg", header.Filename)
			assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))
			assert.Equal(t, []byte("fake image bytes"), content)

			_, _ = w.Write([]byte(`{"status":"1"}`))
		})

		env, err := client.Post(context.Background(), "party_plot.php",
			map[string]string{"type": "2", "name": "Sunrise Lawn"},
			upstream.File{
				Field:       "images",
				Filename:    "plot.jpg",
				ContentType: "image/jpeg",
				Content:     []byte("fake image bytes"),
			})

		assert.NoError(t, err)
		assert.True(t, env.OK())
	})

	t.Run("non-2xx response code", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.Post(context.Background(), "booking.php", map[string]string{"type": "1"})

		assert.ErrorContains(t, err, "unexpected upstream response code 500")
	})

	t.Run("non-json body", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<br />Fatal error: Uncaught mysqli_sql_exception`))
		})

		_, err := client.Post(context.Background(), "booking.php", map[string]string{"type": "1"})

		assert.ErrorContains(t, err, "failed to decode upstream envelope")
	})

	t.Run("unreachable upstream", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Upstream.BaseURL = "http://127.0.0.1:1"
		cfg.Upstream.TimeoutSeconds = 1

		client := upstream.New(cfg, mocks.NewOtel())

		_, err := client.Post(context.Background(), "booking.php", map[string]string{"type": "1"})

		assert.ErrorContains(t, err, "upstream request failed")
	})
}
