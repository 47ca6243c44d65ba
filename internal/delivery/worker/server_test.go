package worker

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/service"
	"storefront/internal/infra/pubsub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorker_ReceivesLocalPublisherEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}

	eventHandler := handler.NewEventHandler(handler.EventHandlerParams{Config: cfg, Logger: logger})
	server := httptest.NewServer(newEcho(cfg, logger, eventHandler))
	defer server.Close()

	publisher := pubsub.NewLocalHTTPPublisher(server.URL+"/push", logger)
	defer publisher.Close()

	err := publisher.PublishCatalogEvent(context.Background(), &service.CatalogEvent{
		RequestID: "req-42",
		EventID:   "event-42",
		Type:      service.EventStoreCreated,
		StoreID:   "store-42",
		Slug:      "corner-bakery",
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"msg":"[Worker] Store created"`)
	assert.Contains(t, buf.String(), `"slug":"corner-bakery"`)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}

func TestWorker_Health(t *testing.T) {
	cfg := &config.Config{}
	eventHandler := handler.NewEventHandler(handler.EventHandlerParams{Config: cfg, Logger: slog.Default()})
	e := newEcho(cfg, slog.Default(), eventHandler)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
