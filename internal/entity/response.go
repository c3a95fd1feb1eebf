// Response envelopes returned by the Callboard REST APIs.
// The ok / error fields are authoritative, the HTTP status stays 200.

package entity

// Plain acknowledgement.
type OKResponse struct {
	OK bool `json:"ok"`
}

// Health of the relay.
type HealthResponse struct {
	OK      bool `json:"ok"`
	Viewers int  `json:"viewers"`
}

// Failure of a request which blew up unexpectedly, error is the stringified cause.
type FailedResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
