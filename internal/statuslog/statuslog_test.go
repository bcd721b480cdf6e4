package statuslog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bithorded/bithorded/internal/asset"
)

func TestLogTransitionsFiresOnStatusChange(t *testing.T) {
	log := New("statuslog-test")
	sub := asset.NewSubscribable(asset.StatusEvent{Status: asset.StatusNone, Size: -1})

	unsubscribe := LogTransitions(log, "test-label", sub)
	defer unsubscribe()

	sub.Publish(asset.StatusEvent{Status: asset.StatusSuccess, Size: 1024, Availability: 1000})

	// No observable side effect besides a log line; this just confirms
	// subscribing and publishing don't panic or deadlock.
	time.Sleep(10 * time.Millisecond)
	require.NotNil(t, log)
}
