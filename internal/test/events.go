package test

import (
	"github.com/bluemonkey003/lunchroom/internal/event"
)

// PublisherStub records published events for assertions.
type PublisherStub struct {
	Events []event.Event
}

// Publish appends the event to the recorded slice.
func (s *PublisherStub) Publish(e event.Event) {
	s.Events = append(s.Events, e)
}

var _ event.Publisher = (*PublisherStub)(nil)
