package events

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/courseflow/courseflow-api/internal/api/settings"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/dukex/mixpanel"
	"github.com/stretchr/testify/assert"
)

func testLog(buf *bytes.Buffer) logutil.Log {
	sl := logutil.NewStderrLog("analytics")
	sl.SetOutput(buf)
	sl.SetLevel(logutil.LogLevelWarn)
	return sl
}

func newMixpanelOnlyTracker(log logutil.Log, apiURL string, timeout time.Duration) amplitudeMixpanelTracker {
	client := &http.Client{
		Timeout: timeout,
	}
	return amplitudeMixpanelTracker{
		log:      log,
		mixpanel: mixpanel.NewFromClient(client, "token", apiURL),
	}
}

func TestNewTrackerWithoutKeysIsNop(t *testing.T) {
	tr := NewTracker(logutil.NewStderrLog("test"), settings.Analytics{}, time.Second)
	_, ok := tr.(NopTracker)
	assert.True(t, ok, "expected NopTracker, got %T", tr)

	tr.Track(context.Background(), "buyer@example.com", EventPaymentCaptured, nil)
}

func TestMemoryTracker(t *testing.T) {
	var tr MemoryTracker
	tr.Track(context.Background(), "buyer@example.com", EventUnexpectedAmount, map[string]interface{}{"amount": "30.00"})

	evs := tr.Events()
	if assert.Len(t, evs, 1) {
		assert.Equal(t, EventUnexpectedAmount, evs[0].Name)
		assert.Equal(t, "30.00", evs[0].Props["amount"])
	}
}

func TestTrackLogsRejectedMixpanelEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "0")
	}))
	defer srv.Close()

	var buf bytes.Buffer
	tr := newMixpanelOnlyTracker(testLog(&buf), srv.URL, time.Second)
	tr.Track(context.Background(), "buyer@example.com", EventPaymentCaptured, map[string]interface{}{"amount": "19.00"})

	assert.Contains(t, buf.String(), "Can't publish event payment_captured")
	assert.Contains(t, buf.String(), "to mixpanel")
}

func TestTrackDoesNotWaitForStalledMixpanel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		fmt.Fprint(w, "1")
	}))
	defer srv.Close()
	defer close(release)

	var buf bytes.Buffer
	tr := newMixpanelOnlyTracker(testLog(&buf), srv.URL, 50*time.Millisecond)

	started := time.Now()
	tr.Track(context.Background(), "buyer@example.com", EventPaymentCaptured, nil)

	assert.True(t, time.Since(started) < 2*time.Second, "tracking took %s", time.Since(started))
	assert.Contains(t, buf.String(), "to mixpanel")
}

func TestTrackAcceptedMixpanelEventLogsNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "1")
	}))
	defer srv.Close()

	var buf bytes.Buffer
	tr := newMixpanelOnlyTracker(testLog(&buf), srv.URL, time.Second)
	tr.Track(context.Background(), "buyer@example.com", EventPaymentCaptured, nil)

	assert.Empty(t, buf.String())
}
