// faq repository encapsulates the access to the remote FAQ source of Callboard.

package faq

import (
	"Callboard/internal/entity"
	"Callboard/internal/errors"
	"Callboard/pkg/log"
	"Callboard/pkg/remote"
	"context"
)

type Repository interface {
	// FetchFAQ GETs the FAQ document from url.
	FetchFAQ(ctx context.Context, logger log.Logger, url string) (entity.FAQ, error)
}

// repository struct of faq Repository.
type repository struct {
	client *remote.Client
}

// Returns a new instance of faq repository for other packages to access its interface.
func NewRepository(client *remote.Client) Repository {
	return repository{client: client}
}

// Returns a remote error when the source is unreachable, answers non-2xx, or the body isn't an FAQ document.
func (r repository) FetchFAQ(ctx context.Context, logger log.Logger, url string) (entity.FAQ, error) {
	var doc struct {
		Items *[]entity.FAQItem `json:"items"`
	}
	if rmterr := r.client.GetJSON(ctx, url, nil, &doc); rmterr != nil {
		logger.WithCtx(ctx).Warn().Err(rmterr).Str("url", url).Msg("FAQ source failed")
		return entity.FAQ{}, errors.Remote(rmterr, "faq source unavailable")
	}
	if doc.Items == nil {
		logger.WithCtx(ctx).Warn().Str("url", url).Msg("FAQ source answered without items")
		return entity.FAQ{}, errors.Remote(nil, "faq source answered without items")
	}
	return entity.FAQ{Items: *doc.Items}, nil
}
