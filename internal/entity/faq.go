// Structure of the FAQ content served to dashboards.

package entity

// A single question and answer.
type FAQItem struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// FAQ is the payload of GET /api/faq, identical in shape whether live or degraded.
type FAQ struct {
	Items []FAQItem `json:"items"`
	// Set when the built-in default list was served instead of the remote source.
	Fallback bool `json:"fallback,omitempty"`
}
