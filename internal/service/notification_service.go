package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/careerhub/internal/config"
	"github.com/spec-kit/careerhub/internal/events"
)

// NotificationService handles emitting notifications for identity events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAccountRegistered, n.handleAccountRegistered)
	n.dispatcher.Subscribe(events.EventCompanyRegistered, n.handleCompanyRegistered)
	n.dispatcher.Subscribe(events.EventCompanyUnregistered, n.handleCompanyUnregistered)
	n.dispatcher.Subscribe(events.EventRecruiterAdded, n.handleRecruiterChange)
	n.dispatcher.Subscribe(events.EventRecruiterRemoved, n.handleRecruiterChange)
	n.dispatcher.Subscribe(events.EventApplicationSubmitted, n.handleApplicationSubmitted)
}

func (n *NotificationService) handleAccountRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("AccountRegistered", zap.String("actor", event.Actor), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleCompanyRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("CompanyRegistered", zap.String("actor", event.Actor), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleCompanyUnregistered(ctx context.Context, event events.Event) error {
	n.logger.Info("CompanyUnregistered", zap.String("actor", event.Actor), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleRecruiterChange(ctx context.Context, event events.Event) error {
	n.logger.Info("RecruiterMembershipChanged",
		zap.String("event_type", string(event.Type)),
		zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleApplicationSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ApplicationSubmitted", zap.String("actor", event.Actor), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
