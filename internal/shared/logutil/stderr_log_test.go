package logutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStderrLogPrefixesChildName(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStderrLog("courseflow-api")
	sl.SetOutput(&buf)
	sl.SetLevel(LogLevelInfo)

	sl.Child("paypal").Warnf("capture of %s failed", "O1")
	sl.Debugf("paypal", "hidden")

	assert.Contains(t, buf.String(), "[courseflow-api/paypal] capture of O1 failed")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestStderrLogJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStderrLog("courseflow-api")
	sl.SetOutput(&buf)
	sl.SetJSONFormat()

	sl.Child("systeme").Errorf("enrollment of %d failed", 42)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &line))
	assert.Equal(t, "enrollment of 42 failed", line["msg"])
	assert.Equal(t, "courseflow-api/systeme", line["logger"])
	assert.Equal(t, "error", line["level"])
}
