package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// NotificationsClient implements iof.NotificationsClient.
type NotificationsClient struct {
	http *internalhttp.Client
}

func (c *NotificationsClient) List(ctx context.Context, opts *iof.NotificationListOptions) (*iof.ListResponse[iof.Notification], error) {
	resp, err := c.http.Get(ctx, apiPath("/notifications"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}

	var result iof.ListResponse[iof.Notification]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *NotificationsClient) Get(ctx context.Context, notificationID string) (*iof.Notification, error) {
	resp, err := c.http.Get(ctx, apiPath("/notifications/%s", notificationID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting notification %s: %w", notificationID, err)
	}

	var notification iof.Notification
	if err := decodeInto(resp, &notification); err != nil {
		return nil, err
	}

	return &notification, nil
}

func (c *NotificationsClient) Send(ctx context.Context, req *iof.SendNotificationRequest) (*iof.Notification, error) {
	resp, err := c.http.Post(ctx, apiPath("/notifications"), req)
	if err != nil {
		return nil, fmt.Errorf("sending notification: %w", err)
	}

	var notification iof.Notification
	if err := decodeInto(resp, &notification); err != nil {
		return nil, err
	}

	return &notification, nil
}

func (c *NotificationsClient) SendEmail(ctx context.Context, req *iof.SendEmailRequest) (*iof.Notification, error) {
	resp, err := c.http.Post(ctx, apiPath("/notifications/email"), req)
	if err != nil {
		return nil, fmt.Errorf("sending email: %w", err)
	}

	var notification iof.Notification
	if err := decodeInto(resp, &notification); err != nil {
		return nil, err
	}

	return &notification, nil
}

func (c *NotificationsClient) SendSMS(ctx context.Context, req *iof.SendSMSRequest) (*iof.Notification, error) {
	resp, err := c.http.Post(ctx, apiPath("/notifications/sms"), req)
	if err != nil {
		return nil, fmt.Errorf("sending SMS: %w", err)
	}

	var notification iof.Notification
	if err := decodeInto(resp, &notification); err != nil {
		return nil, err
	}

	return &notification, nil
}

func (c *NotificationsClient) SendPush(ctx context.Context, req *iof.SendPushRequest) (*iof.Notification, error) {
	resp, err := c.http.Post(ctx, apiPath("/notifications/push"), req)
	if err != nil {
		return nil, fmt.Errorf("sending push notification: %w", err)
	}

	var notification iof.Notification
	if err := decodeInto(resp, &notification); err != nil {
		return nil, err
	}

	return &notification, nil
}

func (c *NotificationsClient) ListTemplates(ctx context.Context, opts *iof.NotificationListOptions) (*iof.ListResponse[iof.NotificationTemplate], error) {
	resp, err := c.http.Get(ctx, apiPath("/notifications/templates"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing notification templates: %w", err)
	}

	var result iof.ListResponse[iof.NotificationTemplate]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *NotificationsClient) GetTemplate(ctx context.Context, templateID string) (*iof.NotificationTemplate, error) {
	resp, err := c.http.Get(ctx, apiPath("/notifications/templates/%s", templateID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting notification template %s: %w", templateID, err)
	}

	var template iof.NotificationTemplate
	if err := decodeInto(resp, &template); err != nil {
		return nil, err
	}

	return &template, nil
}

func (c *NotificationsClient) SendFromTemplate(ctx context.Context, templateID string, req *iof.SendFromTemplateRequest) (*iof.Notification, error) {
	resp, err := c.http.Post(ctx, apiPath("/notifications/templates/%s/send", templateID), req)
	if err != nil {
		return nil, fmt.Errorf("sending from notification template %s: %w", templateID, err)
	}

	var notification iof.Notification
	if err := decodeInto(resp, &notification); err != nil {
		return nil, err
	}

	return &notification, nil
}

func (c *NotificationsClient) GetPreferences(ctx context.Context, userID string) (*iof.NotificationPreferences, error) {
	resp, err := c.http.Get(ctx, apiPath("/notifications/preferences/%s", userID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting notification preferences for %s: %w", userID, err)
	}

	var preferences iof.NotificationPreferences
	if err := decodeInto(resp, &preferences); err != nil {
		return nil, err
	}

	return &preferences, nil
}

func (c *NotificationsClient) UpdatePreferences(ctx context.Context, userID string, prefs *iof.NotificationPreferences) (*iof.NotificationPreferences, error) {
	resp, err := c.http.Put(ctx, apiPath("/notifications/preferences/%s", userID), prefs)
	if err != nil {
		return nil, fmt.Errorf("updating notification preferences for %s: %w", userID, err)
	}

	var preferences iof.NotificationPreferences
	if err := decodeInto(resp, &preferences); err != nil {
		return nil, err
	}

	return &preferences, nil
}
