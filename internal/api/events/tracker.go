package events

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/courseflow/courseflow-api/internal/api/settings"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/dukex/mixpanel"
	"github.com/savaki/amplitude-go"
)

const (
	EventPaymentCaptured  = "payment_captured"
	EventUnexpectedAmount = "unexpected_amount"
)

// Tracker publishes product analytics events. Failures are only logged:
// analytics outages never fail a checkout.
type Tracker interface {
	Track(ctx context.Context, userID, eventName string, props map[string]interface{})
}

type amplitudeMixpanelTracker struct {
	log       logutil.Log
	amplitude *amplitude.Client
	mixpanel  mixpanel.Mixpanel
}

// NewTracker returns a nop tracker when no analytics key is configured.
// Mixpanel tracking is a synchronous request bounded by clientTimeout.
func NewTracker(log logutil.Log, cfg settings.Analytics, clientTimeout time.Duration) Tracker {
	if cfg.AmplitudeAPIKey == "" && cfg.MixpanelToken == "" {
		return NopTracker{}
	}

	t := amplitudeMixpanelTracker{log: log}
	if cfg.AmplitudeAPIKey != "" {
		t.amplitude = amplitude.New(cfg.AmplitudeAPIKey)
	}
	if cfg.MixpanelToken != "" {
		client := &http.Client{
			Timeout: clientTimeout,
		}
		t.mixpanel = mixpanel.NewFromClient(client, cfg.MixpanelToken, "")
	}

	return t
}

func (t amplitudeMixpanelTracker) Track(_ context.Context, userID, eventName string, props map[string]interface{}) {
	if t.amplitude != nil {
		ev := amplitude.Event{
			UserId:          userID,
			EventType:       eventName,
			EventProperties: props,
		}
		if err := t.amplitude.Publish(ev); err != nil {
			t.log.Warnf("Can't publish %+v to amplitude: %s", ev, err)
		}
	}

	if t.mixpanel != nil {
		const ip = "0" // don't auto-detect
		ev := &mixpanel.Event{
			IP:         ip,
			Properties: props,
		}
		if err := t.mixpanel.Track(userID, eventName, ev); err != nil {
			t.log.Warnf("Can't publish event %s (%+v) to mixpanel: %s", eventName, ev, err)
		}
	}
}

type NopTracker struct{}

func (t NopTracker) Track(_ context.Context, _, _ string, _ map[string]interface{}) {}

type TrackedEvent struct {
	UserID string
	Name   string
	Props  map[string]interface{}
}

type MemoryTracker struct {
	mu     sync.Mutex
	events []TrackedEvent
}

func (t *MemoryTracker) Track(_ context.Context, userID, eventName string, props map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, TrackedEvent{UserID: userID, Name: eventName, Props: props})
}

func (t *MemoryTracker) Events() []TrackedEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]TrackedEvent(nil), t.events...)
}
