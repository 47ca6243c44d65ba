package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// LocalSubscription names the subscription local pushes claim to come from
const LocalSubscription = "projects/local/subscriptions/catalog-events"

// PushMessage is the envelope a Pub/Sub push subscription POSTs to its endpoint
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps event the way Pub/Sub delivers it to push endpoints
func NewPushMessage(event *service.CatalogEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodePushMessage unpacks the catalog event carried by msg.
// Events without a type or store are rejected.
func DecodePushMessage(msg *PushMessage) (*service.CatalogEvent, error) {
	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid message data")
	}

	var event service.CatalogEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "invalid catalog event")
	}

	if event.Type == "" || event.StoreID == "" {
		return nil, errors.New("catalog event without type or store")
	}

	return &event, nil
}

// eventAttributes are the message attributes subscribers filter on
func eventAttributes(event *service.CatalogEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": string(event.Type),
		"store_id":   event.StoreID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
