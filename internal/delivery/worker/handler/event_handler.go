package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	"storefront/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// EventHandler receives catalog events pushed by Pub/Sub and records them in the activity log
type EventHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
}

// EventHandlerParams holds dependencies for the EventHandler
type EventHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEventHandler creates a new Pub/Sub push handler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	// Only Google pushes carry an OIDC token, and never on a developer machine
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == config.PubSubProviderGoogle &&
		params.Config.Env.Env != config.EnvLocal

	return &EventHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages are rejected with 400, everything else is acknowledged
// so Pub/Sub does not redeliver events nobody can act on.
func (h *EventHandler) HandlePush(c echo.Context) error {
	req := c.Request()
	ctx := req.Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(req); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pubsub.DecodePushMessage(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode catalog event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)
	c.SetRequest(req.WithContext(ctx))

	h.record(ctx, event)

	return c.NoContent(http.StatusOK)
}

// record writes one activity log line per event
func (h *EventHandler) record(ctx context.Context, event *service.CatalogEvent) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(
		slog.String("event_id", event.EventID),
		slog.String("store_id", event.StoreID),
		slog.Time("occurred_at", event.OccurredAt),
	)

	switch event.Type {
	case service.EventStoreCreated:
		logger.Info("[Worker] Store created",
			slog.String("slug", event.Slug),
			slog.String("author_id", event.UserID),
		)
	case service.EventStoreUpdated:
		logger.Info("[Worker] Store updated",
			slog.String("slug", event.Slug),
			slog.String("user_id", event.UserID),
		)
	case service.EventHeartToggled:
		logger.Info("[Worker] Heart toggled",
			slog.String("user_id", event.UserID),
			slog.Bool("hearted", event.Hearted),
		)
	default:
		logger.Warn("[Worker] Ignoring unknown catalog event", slog.String("event_type", string(event.Type)))
	}
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *EventHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.CatalogEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// Set by RequestIDMiddleware from the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyToken verifies the OIDC token Google Pub/Sub attaches to push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *EventHandler) verifyToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || token == "" {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
