package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// EventsClient implements iof.EventsClient.
type EventsClient struct {
	http *internalhttp.Client
}

func (c *EventsClient) List(ctx context.Context, opts *iof.EventListOptions) (*iof.ListResponse[iof.Event], error) {
	resp, err := c.http.Get(ctx, apiPath("/events"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	var result iof.ListResponse[iof.Event]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *EventsClient) Get(ctx context.Context, eventID string) (*iof.Event, error) {
	resp, err := c.http.Get(ctx, apiPath("/events/%s", eventID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting event %s: %w", eventID, err)
	}

	var event iof.Event
	if err := decodeInto(resp, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

func (c *EventsClient) Publish(ctx context.Context, req *iof.PublishEventRequest) (*iof.Event, error) {
	resp, err := c.http.Post(ctx, apiPath("/events"), req)
	if err != nil {
		return nil, fmt.Errorf("publishing event: %w", err)
	}

	var event iof.Event
	if err := decodeInto(resp, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

func (c *EventsClient) ListEventTypes(ctx context.Context) ([]iof.EventType, error) {
	resp, err := c.http.Get(ctx, apiPath("/events/types"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing event types: %w", err)
	}

	var types []iof.EventType
	if err := decodeInto(resp, &types); err != nil {
		return nil, err
	}

	return types, nil
}

func (c *EventsClient) GetEventSchema(ctx context.Context, eventType string) (*iof.EventSchema, error) {
	resp, err := c.http.Get(ctx, apiPath("/events/types/%s/schema", eventType), nil)
	if err != nil {
		return nil, fmt.Errorf("getting schema for event type %s: %w", eventType, err)
	}

	var schema iof.EventSchema
	if err := decodeInto(resp, &schema); err != nil {
		return nil, err
	}

	return &schema, nil
}

func (c *EventsClient) ListSubscriptions(ctx context.Context, opts *iof.ListOptions) (*iof.ListResponse[iof.EventSubscription], error) {
	resp, err := c.http.Get(ctx, apiPath("/events/subscriptions"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing event subscriptions: %w", err)
	}

	var result iof.ListResponse[iof.EventSubscription]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *EventsClient) CreateSubscription(ctx context.Context, req *iof.CreateEventSubscriptionRequest) (*iof.EventSubscription, error) {
	resp, err := c.http.Post(ctx, apiPath("/events/subscriptions"), req)
	if err != nil {
		return nil, fmt.Errorf("creating event subscription: %w", err)
	}

	var subscription iof.EventSubscription
	if err := decodeInto(resp, &subscription); err != nil {
		return nil, err
	}

	return &subscription, nil
}

func (c *EventsClient) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	if _, err := c.http.Delete(ctx, apiPath("/events/subscriptions/%s", subscriptionID)); err != nil {
		return fmt.Errorf("deleting event subscription %s: %w", subscriptionID, err)
	}

	return nil
}
