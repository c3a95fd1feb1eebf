// Structure of the email confirmation request and its dispatch payload.

package entity

import (
	"bytes"
	"encoding/json"
)

// EmailConfirmation is the inbound body of POST /api/email-confirm.
type EmailConfirmation struct {
	Email    Scalar `json:"email" valid:"required"`
	Location Scalar `json:"loc" valid:"required"`
	Date     Scalar `json:"date" valid:"required"`
	Time     Scalar `json:"time" valid:"required"`
	Phone    Scalar `json:"phone,omitempty" valid:"-"`
}

// Scalar is a request field which only has to be present. Strings are kept as is,
// numbers keep their literal text (a time of 1430, a phone of 2079460000).
// Anything else decodes as empty and fails presence validation.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	var v interface{}
	if json.Unmarshal(data, &v) != nil {
		*s = ""
		return nil
	}
	switch t := v.(type) {
	case string:
		*s = Scalar(t)
	case float64:
		*s = Scalar(bytes.TrimSpace(data))
	default:
		*s = ""
	}
	return nil
}

// EmailDispatch is what gets POSTed to the configured webhook.
type EmailDispatch struct {
	To       string `json:"to"`
	From     string `json:"from"`
	Subject  string `json:"subject"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Phone    string `json:"phone,omitempty"`
}

// EmailConfirmResponse is the outbound body of POST /api/email-confirm.
type EmailConfirmResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	// Set when no webhook is configured and nothing was sent.
	Demo bool `json:"demo,omitempty"`
}
