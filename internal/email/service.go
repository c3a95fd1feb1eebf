// Service layer of email confirmations in Callboard.

package email

import (
	"Callboard/internal/entity"
	"Callboard/internal/metrics"
	"Callboard/pkg/log"
	"context"
)

// Name of the operation in metrics.
const operation = "email_confirm"

// Subject line of every confirmation.
const subject = "Your appointment is confirmed"

// Service layer of internal package email.
type Service interface {
	// Confirm validates req and dispatches it, the outcome is always reported in the response.
	Confirm(ctx context.Context, req entity.EmailConfirmation) entity.EmailConfirmResponse
}

type service struct {
	webhookURL  string
	webhookKey  string
	senderEmail string
	emailRepo   Repository
	metrics     *metrics.Collector
	logger      log.Logger
}

// Helps to access the service layer interface and call methods. An empty webhookURL switches to demo mode.
func NewService(cfg entity.Config, emailRepo Repository, collector *metrics.Collector, logger log.Logger) Service {
	return service{
		webhookURL:  cfg.WebhookURL,
		webhookKey:  cfg.WebhookKey,
		senderEmail: cfg.SenderEmail,
		emailRepo:   emailRepo,
		metrics:     collector,
		logger:      logger,
	}
}

func (s service) Confirm(ctx context.Context, req entity.EmailConfirmation) entity.EmailConfirmResponse {
	if missing, valerr := validateConfirmation(req); valerr != nil {
		s.logger.WithCtx(ctx).Info().Strs("missing", missing).Msg("Email confirmation rejected")
		s.metrics.UpstreamFailure(operation, valerr)
		return entity.EmailConfirmResponse{OK: false, Error: valerr.Error()}
	}

	dispatch := entity.EmailDispatch{
		To:       string(req.Email),
		From:     s.senderEmail,
		Subject:  subject,
		Location: string(req.Location),
		Date:     string(req.Date),
		Time:     string(req.Time),
		Phone:    string(req.Phone),
	}

	if s.webhookURL == "" {
		s.logger.WithCtx(ctx).Info().
			Str("to", dispatch.To).
			Str("from", dispatch.From).
			Str("location", dispatch.Location).
			Str("date", dispatch.Date).
			Str("time", dispatch.Time).
			Msg("No email webhook configured, confirmation would have been sent (demo mode)")
		s.metrics.UpstreamCall(operation, metrics.OutcomeDemo)
		return entity.EmailConfirmResponse{OK: true, Demo: true}
	}

	if rmterr := s.emailRepo.Dispatch(ctx, s.logger, s.webhookURL, s.webhookKey, dispatch); rmterr != nil {
		s.metrics.UpstreamFailure(operation, rmterr)
		return entity.EmailConfirmResponse{OK: false, Error: rmterr.Error()}
	}
	s.metrics.UpstreamCall(operation, metrics.OutcomeRemote)
	s.logger.WithCtx(ctx).Info().Str("to", dispatch.To).Msg("Email confirmation dispatched")
	return entity.EmailConfirmResponse{OK: true}
}
