// Structure of the events broadcasted to dashboard viewers in Callboard.

package entity

import "time"

// EventType tags every Event variant on the wire.
type EventType string

const (
	// Call lifecycle markers.
	EventStarted EventType = "started"
	EventEnded   EventType = "ended"
	// A single utterance of the conversation.
	EventTranscript EventType = "transcript"
	// Free-text status line.
	EventStatus EventType = "status"
)

// Speaker identifies who produced a transcript utterance.
type Speaker string

const (
	SpeakerCaller Speaker = "caller"
	SpeakerAgent  Speaker = "agent"
)

// ParseSpeaker maps an inbound role onto a Speaker, anything unknown is the caller.
func ParseSpeaker(role string) Speaker {
	if Speaker(role) == SpeakerAgent {
		return SpeakerAgent
	}
	return SpeakerCaller
}

// Event is a single broadcast record. Build it with one of the constructors below,
// it is treated as immutable once built.
type Event struct {
	Type EventType `json:"type"`
	// Unix milliseconds, only set on lifecycle markers.
	Timestamp int64 `json:"ts,omitempty"`
	// Only set on transcript events.
	Role Speaker `json:"role,omitempty"`
	// Utterance or status line.
	Text string `json:"text,omitempty"`
}

// NewStartedEvent marks the beginning of a call.
func NewStartedEvent(at time.Time) Event {
	return Event{Type: EventStarted, Timestamp: at.UnixMilli()}
}

// NewEndedEvent marks the end of a call.
func NewEndedEvent(at time.Time) Event {
	return Event{Type: EventEnded, Timestamp: at.UnixMilli()}
}

// NewTranscriptEvent carries one utterance, role defaults to the caller.
func NewTranscriptEvent(role, text string) Event {
	return Event{Type: EventTranscript, Role: ParseSpeaker(role), Text: text}
}

// NewStatusEvent carries one status line.
func NewStatusEvent(text string) Event {
	return Event{Type: EventStatus, Text: text}
}
