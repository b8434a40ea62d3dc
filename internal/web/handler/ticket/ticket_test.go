package ticket

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketgen/ticketgen/internal/config"
	"github.com/ticketgen/ticketgen/internal/service"
	gen "github.com/ticketgen/ticketgen/internal/ticket"
	"github.com/ticketgen/ticketgen/internal/web/handler"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		Generator: config.Generator{
			Strategy:          gen.StrategyLibrary,
			Charset:           gen.NameAlphanumeric,
			MinLength:         gen.DefaultMinLength,
			MaxLength:         gen.DefaultMaxLength,
			MaxExplicitLength: 64,
			MaxCount:          20,
		},
	}

	tickets, err := service.NewTicketService(cfg.Generator, gen.GlobalSource, service.NewMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		StructValidator: handler.NewValidator(),
		ErrorHandler:    handler.ErrorHandler,
	})

	s := Service{}
	require.NoError(t, s.Init(app, cfg, tickets))

	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, body
}

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		count    int
		strategy string
		pattern  string
	}{
		{
			name:     "defaults",
			query:    "",
			count:    1,
			strategy: gen.StrategyLibrary,
			pattern:  `^[A-Za-z0-9]{8,32}$`,
		},
		{
			name:     "secure batch",
			query:    "?strategy=secure&length=10&count=5",
			count:    5,
			strategy: gen.StrategySecure,
			pattern:  `^[0-9a-f]{10}$`,
		},
		{
			name:     "sampling numeric",
			query:    "?strategy=sampling&charset=numeric&length=6&count=3",
			count:    3,
			strategy: gen.StrategySampling,
			pattern:  `^[0-9]{6}$`,
		},
		{
			name:     "ascii",
			query:    "?strategy=ascii&length=12",
			count:    1,
			strategy: gen.StrategyASCII,
			pattern:  `^[(-~]{12}$`,
		},
		{
			name:     "zero length",
			query:    "?length=0&count=2",
			count:    2,
			strategy: gen.StrategyLibrary,
			pattern:  `^$`,
		},
	}

	app := newTestApp(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, app, Path+tt.query)
			require.Equal(t, fiber.StatusOK, status, string(body))

			var batch service.Batch
			require.NoError(t, json.Unmarshal(body, &batch))

			assert.Equal(t, tt.strategy, batch.Strategy)
			require.Len(t, batch.Tickets, tt.count)

			for _, tk := range batch.Tickets {
				assert.Regexp(t, regexp.MustCompile(tt.pattern), tk)
			}
		})
	}
}

func TestGet_LengthAtLimit(t *testing.T) {
	status, body := get(t, newTestApp(t), Path+"?strategy=ascii&length=64&count=20")
	require.Equal(t, fiber.StatusOK, status, string(body))

	var batch service.Batch
	require.NoError(t, json.Unmarshal(body, &batch))
	require.Len(t, batch.Tickets, 20)
	assert.Len(t, batch.Tickets[0], 64)
}

func TestGet_BadRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "negative length", query: "?length=-1"},
		{name: "unknown strategy", query: "?strategy=qr"},
		{name: "length not a number", query: "?length=abc"},
		{name: "count above max", query: "?count=21"},
		{name: "negative count", query: "?count=-2"},
		{name: "length above limit", query: "?length=65"},
		{name: "huge ascii batch", query: "?strategy=ascii&length=3000000&count=20"},
		{name: "charset too large", query: "?charset=" + strings.Repeat("ab", 129)},
	}

	app := newTestApp(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, app, Path+tt.query)
			assert.Equal(t, fiber.StatusBadRequest, status)

			var resp handler.GlobalErrorHandlerResp
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
