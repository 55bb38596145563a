package context

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRequestID(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantKeep bool
	}{
		{name: "caller id kept", in: "req-42", wantKeep: true},
		{name: "empty", in: "", wantKeep: false},
		{name: "contains space", in: "req 42", wantKeep: false},
		{name: "contains newline", in: "req\n42", wantKeep: false},
		{name: "too long", in: strings.Repeat("a", maxRequestIDLen+1), wantKeep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRequestID(tt.in)
			if tt.wantKeep {
				assert.Equal(t, tt.in, got)

				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithActor_ScopesLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	userID := uuid.New()

	ctx := WithLogger(context.Background(), base)
	ctx = WithActor(ctx, userID)

	got, ok := ActorFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, userID, got)

	GetLoggerOrDefault(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), `"user_id":"`+userID.String()+`"`)
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	fallback := slog.Default()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
	_, ok := ActorFromContext(WithActor(ctx, uuid.Nil))
	assert.False(t, ok)

	assert.Equal(t, "r1", GetRequestIDFromContext(WithRequestID(ctx, "r1")))
}
