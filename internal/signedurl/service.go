// Service layer of the voice-agent session URL in Callboard.

package signedurl

import (
	"Callboard/internal/entity"
	"Callboard/internal/errors"
	"Callboard/internal/metrics"
	"Callboard/pkg/log"
	"Callboard/pkg/remote"
	"context"
)

// Name of the operation in metrics.
const operation = "signed_url"

// Response fields which may carry the signed URL, by priority. Different API versions use different names.
var urlFields = []string{"signed_url", "signedUrl", "websocket_url", "url"}

const (
	missingAgentMessage = "missing ELEVENLABS_AGENT_ID (agent identifier) in configuration"
	noKeyNote           = "no API key configured, using the public agent URL"
	fallbackNote        = "signed URL unavailable from every endpoint, using the public agent URL"
)

// Service layer of internal package signedurl.
type Service interface {
	// SignedURL returns a session URL for the configured agent. Failures are reported in the response.
	SignedURL(ctx context.Context) entity.SignedURLResponse
}

type service struct {
	apiKey         string
	agentID        string
	endpoints      []string
	publicAgentURL string
	signedURLRepo  Repository
	metrics        *metrics.Collector
	logger         log.Logger
}

// Helps to access the service layer interface and call methods.
func NewService(cfg entity.Config, signedURLRepo Repository, collector *metrics.Collector, logger log.Logger) Service {
	return service{
		apiKey:         cfg.APIKey,
		agentID:        cfg.AgentID,
		endpoints:      append([]string(nil), cfg.SignedURLEndpoints...),
		publicAgentURL: cfg.PublicAgentURL,
		signedURLRepo:  signedURLRepo,
		metrics:        collector,
		logger:         logger,
	}
}

func (s service) SignedURL(ctx context.Context) entity.SignedURLResponse {
	if s.agentID == "" {
		cfgerr := errors.MissingConfig(missingAgentMessage)
		s.logger.WithCtx(ctx).Warn().Err(cfgerr).Msg("Signed url requested without an agent")
		s.metrics.UpstreamFailure(operation, cfgerr)
		return entity.SignedURLResponse{URL: "", Error: cfgerr.Error()}
	}

	public, prserr := withAgentID(s.publicAgentURL, s.agentID)
	if prserr != nil {
		interr := errors.Internal(prserr)
		s.logger.WithCtx(ctx).Error().Err(interr).Msg("Public agent url is invalid")
		s.metrics.UpstreamFailure(operation, interr)
		return entity.SignedURLResponse{URL: "", Error: interr.Error()}
	}

	if s.apiKey == "" {
		s.metrics.UpstreamCall(operation, metrics.OutcomeFallback)
		return entity.SignedURLResponse{URL: public, Note: noKeyNote}
	}

	signed, endpoint, rmterr := remote.FirstSuccess(ctx, s.endpoints, s.attempt)
	if rmterr != nil {
		s.logger.WithCtx(ctx).Warn().Err(rmterr).Msg("Falling back to the public agent url")
		s.metrics.UpstreamCall(operation, metrics.OutcomeFallback)
		return entity.SignedURLResponse{URL: public, Source: entity.SignedURLSourceFallback, Note: fallbackNote}
	}
	s.metrics.UpstreamCall(operation, metrics.OutcomeRemote)
	return entity.SignedURLResponse{URL: signed, Source: endpoint}
}

// attempt asks one endpoint and digs the URL out of its answer.
func (s service) attempt(ctx context.Context, endpoint string) (string, error) {
	doc, rmterr := s.signedURLRepo.RequestSignedURL(ctx, s.logger, endpoint, s.apiKey, s.agentID)
	if rmterr != nil {
		return "", rmterr
	}
	signed, field, ok := doc.FirstString(urlFields...)
	if !ok {
		s.logger.WithCtx(ctx).Warn().Str("endpoint", endpoint).Msg("Signed url response carries no url")
		return "", errors.Remote(nil, "no signed url in response")
	}
	s.logger.WithCtx(ctx).Info().Str("endpoint", endpoint).Str("field", field).Msg("Signed url obtained")
	return signed, nil
}
