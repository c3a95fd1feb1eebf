// email repository encapsulates the dispatch of confirmations to the configured webhook.

package email

import (
	"Callboard/internal/entity"
	"Callboard/internal/errors"
	"Callboard/pkg/log"
	"Callboard/pkg/remote"
	"context"
)

type Repository interface {
	// Dispatch POSTs one confirmation to webhookURL. key, when set, is sent as a bearer token.
	Dispatch(ctx context.Context, logger log.Logger, webhookURL, key string, dispatch entity.EmailDispatch) error
}

// repository struct of email Repository.
type repository struct {
	client *remote.Client
}

// Returns a new instance of email repository for other packages to access its interface.
func NewRepository(client *remote.Client) Repository {
	return repository{client: client}
}

func (r repository) Dispatch(ctx context.Context, logger log.Logger, webhookURL, key string, dispatch entity.EmailDispatch) error {
	headers := map[string]string{}
	if key != "" {
		headers["Authorization"] = "Bearer " + key
	}
	if _, rmterr := r.client.PostJSON(ctx, webhookURL, headers, dispatch); rmterr != nil {
		logger.WithCtx(ctx).Error().Err(rmterr).Msg("Email webhook dispatch failed")
		return errors.Remote(rmterr, "email webhook dispatch failed")
	}
	return nil
}
