package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithLogContextHelpersMutateSameStruct(t *testing.T) {
	ctx := context.Background()
	ctx = WithLogRequestID(ctx, "req")
	ctx = WithLogRequestPath(ctx, "/assignments")
	ctx = WithLogRequestMethod(ctx, "POST")
	ctx = WithLogRequestStatus(ctx, 201)
	ctx = WithLogRequestDuration(ctx, "5ms")
	ctx = WithLogCommand(ctx, "draw")
	ctx = WithLogParticipantsCount(ctx, 3)
	ctx = WithLogPriorPairingsCount(ctx, 1)
	ctx = WithLogAttempts(ctx, 2)

	value, ok := ctx.Value(key).(logCtx)
	require.True(t, ok)
	require.Equal(t, "req", value.RequestID)
	require.Equal(t, "/assignments", value.Path)
	require.Equal(t, "POST", value.Method)
	require.Equal(t, 201, value.Status)
	require.Equal(t, "5ms", value.RequestDuration)
	require.Equal(t, "draw", value.Command)
	require.Equal(t, 3, value.ParticipantsCount)
	require.Equal(t, 1, value.PriorPairingsCount)
	require.Equal(t, 2, value.Attempts)
}

func TestWithLogHelpersDoNotLeakIntoParentContext(t *testing.T) {
	parent := WithLogRequestID(context.Background(), "parent")
	child := WithLogAttempts(parent, 7)

	parentValue := parent.Value(key).(logCtx)
	childValue := child.Value(key).(logCtx)
	require.Zero(t, parentValue.Attempts)
	require.Equal(t, 7, childValue.Attempts)
	require.Equal(t, "parent", childValue.RequestID)
}
