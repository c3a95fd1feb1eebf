// Service layer of the FAQ content in Callboard: one remote source, or the built-in list.

package faq

import (
	"Callboard/internal/entity"
	"Callboard/internal/metrics"
	"Callboard/pkg/log"
	"context"
)

// Name of the operation in metrics.
const operation = "faq"

// Served whenever the remote source is unset or fails. Only handed out through Default.
var defaultItems = []entity.FAQItem{
	{
		Question: "What can the voice agent help me with?",
		Answer:   "It can answer common questions, check availability and book an appointment for you.",
	},
	{
		Question: "Will I get a confirmation of my booking?",
		Answer:   "Yes. Once the date, time and location are agreed a confirmation email is sent to the address you give.",
	},
	{
		Question: "Can I talk to a person instead?",
		Answer:   "Ask the agent to transfer you at any point and a member of the team will call you back.",
	},
}

// Service layer of internal package faq.
type Service interface {
	// FAQ returns the live FAQ, or the default one marked as fallback. It never fails.
	FAQ(ctx context.Context) entity.FAQ
}

type service struct {
	sourceURL string
	faqRepo   Repository
	metrics   *metrics.Collector
	logger    log.Logger
}

// Helps to access the service layer interface and call methods. An empty sourceURL always serves the default.
func NewService(sourceURL string, faqRepo Repository, collector *metrics.Collector, logger log.Logger) Service {
	return service{sourceURL: sourceURL, faqRepo: faqRepo, metrics: collector, logger: logger}
}

func (s service) FAQ(ctx context.Context) entity.FAQ {
	if s.sourceURL == "" {
		s.metrics.UpstreamCall(operation, metrics.OutcomeFallback)
		return Default()
	}
	faq, rmterr := s.faqRepo.FetchFAQ(ctx, s.logger, s.sourceURL)
	if rmterr != nil {
		s.logger.WithCtx(ctx).Info().Err(rmterr).Msg("Serving default FAQ")
		s.metrics.UpstreamCall(operation, metrics.OutcomeFallback)
		return Default()
	}
	s.metrics.UpstreamCall(operation, metrics.OutcomeRemote)
	return faq
}

// Default returns a fresh copy of the built-in FAQ.
func Default() entity.FAQ {
	return entity.FAQ{
		Items:    append([]entity.FAQItem(nil), defaultItems...),
		Fallback: true,
	}
}
