// signedurl repository encapsulates the calls to the voice-agent signed URL endpoints.

package signedurl

import (
	"Callboard/internal/errors"
	"Callboard/pkg/log"
	"Callboard/pkg/remote"
	"context"
	"net/url"
)

type Repository interface {
	// RequestSignedURL POSTs the agent id to one candidate endpoint and returns the decoded body.
	RequestSignedURL(ctx context.Context, logger log.Logger, endpoint, apiKey, agentID string) (remote.Document, error)
}

// repository struct of signedurl Repository.
type repository struct {
	client *remote.Client
}

// Returns a new instance of signedurl repository for other packages to access its interface.
func NewRepository(client *remote.Client) Repository {
	return repository{client: client}
}

func (r repository) RequestSignedURL(ctx context.Context, logger log.Logger, endpoint, apiKey, agentID string) (remote.Document, error) {
	target, prserr := withAgentID(endpoint, agentID)
	if prserr != nil {
		return nil, errors.Remote(prserr, "invalid signed url endpoint")
	}
	headers := map[string]string{"xi-api-key": apiKey}
	doc, rmterr := r.client.PostJSON(ctx, target, headers, map[string]string{"agent_id": agentID})
	if rmterr != nil {
		logger.WithCtx(ctx).Warn().Err(rmterr).Str("endpoint", endpoint).Msg("Signed url candidate failed")
		return nil, errors.Remote(rmterr, "signed url request failed")
	}
	return doc, nil
}

// withAgentID sets the agent_id query parameter on raw, keeping any other parameter.
func withAgentID(raw, agentID string) (string, error) {
	u, prserr := url.Parse(raw)
	if prserr != nil {
		return "", prserr
	}
	q := u.Query()
	q.Set("agent_id", agentID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
