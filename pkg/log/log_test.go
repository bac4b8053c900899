package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newBufferLogger(compact bool) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return New(l, compact), buf
}

func TestLogger_CompactDropsIrrelevantFields(t *testing.T) {
	lg, buf := newBufferLogger(true)

	lg.WithFields(Fields{"campaign_id": "c1", "payload": "ignorado"}).Info("ok")

	out := buf.String()
	assert.Contains(t, out, "campaign_id=c1")
	assert.NotContains(t, out, "payload")
}

func TestLogger_FullKeepsEverything(t *testing.T) {
	lg, buf := newBufferLogger(false)

	lg.WithField("payload", "mantido").Info("ok")

	assert.Contains(t, buf.String(), "payload=mantido")
}

func TestLogger_WithContextAddsCorrelationID(t *testing.T) {
	lg, buf := newBufferLogger(true)

	ctx, id := WithCorrelationID(context.Background())
	lg.WithContext(ctx).Info("req")

	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Contains(t, buf.String(), "correlation_id="+id)
}
