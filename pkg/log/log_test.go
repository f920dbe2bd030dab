package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_AddsTracingFields(t *testing.T) {
	var buf bytes.Buffer
	SetupTestLogger()
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	ctx, id := WithCorrelationID(context.Background())
	ctx = WithCompanyID(ctx, "empresa-1")

	ForContext(ctx).Info("dashboard: calculado")

	assert.Contains(t, buf.String(), "correlation_id="+id)
	assert.Contains(t, buf.String(), "company_id=empresa-1")
	assert.Contains(t, buf.String(), "dashboard: calculado")
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	Setup("barulhento")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Setup("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}
