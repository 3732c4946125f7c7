package dirty_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hexkit/hexfile/dirty"
	"github.com/joshuapare/hexkit/internal/testutil"
)

// =============================================================================
// Context Cancellation Tests for Dirty Package
// =============================================================================

func TestTracker_FlushData_PreCancelled(t *testing.T) {
	f, cleanup := testutil.SetupTestFile(t, testutil.Pattern(8192))
	defer cleanup()

	tracker := dirty.NewTracker(f)
	tracker.Add(4096, 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tracker.FlushData(ctx)

	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled),
		"expected context.Canceled, got: %v", err)
	// Ranges survive so a retry can flush them.
	require.True(t, tracker.Pending())
}

func TestTracker_Sync_PreCancelled(t *testing.T) {
	f, cleanup := testutil.SetupTestFile(t, testutil.Pattern(8192))
	defer cleanup()

	tracker := dirty.NewTracker(f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tracker.Sync(ctx, dirty.FlushAuto)

	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled),
		"expected context.Canceled, got: %v", err)
}

func TestTracker_FlushData_NothingPending(t *testing.T) {
	f, cleanup := testutil.SetupTestFile(t, testutil.Pattern(16))
	defer cleanup()

	tracker := dirty.NewTracker(f)

	// Nothing to flush returns before looking at the context.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, tracker.FlushData(ctx))
}
