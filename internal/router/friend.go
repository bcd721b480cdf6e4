package router

import (
	"context"
	"time"
)

// reconnectInterval is the retry cadence on connection failure (§4.6).
const reconnectInterval = 5 * time.Second

// FriendConfig is one configured peer (§6 Config "friends" table).
type FriendConfig struct {
	Name string
	Addr string
	Port int
}

// Dialer resolves and connects to a configured friend, returning a live
// Client on success.
type Dialer func(ctx context.Context, f FriendConfig) (Client, error)

// Reconnector holds an async retry loop for one configured friend: on
// failure it retries every reconnectInterval; on success it hands the
// Client to onConnected and keeps probing at twice that interval as a
// cheap connection health check (§4.6).
type Reconnector struct {
	friend      FriendConfig
	dial        Dialer
	onConnected func(Client)

	cancel context.CancelFunc
	done   chan struct{}
}

// NewReconnector starts the retry loop immediately in a background
// goroutine.
func NewReconnector(ctx context.Context, f FriendConfig, dial Dialer, onConnected func(Client)) *Reconnector {
	cctx, cancel := context.WithCancel(ctx)
	r := &Reconnector{
		friend:      f,
		dial:        dial,
		onConnected: onConnected,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
	go r.run(cctx)
	return r
}

// Cancel stops the retry loop. Safe to call more than once.
func (r *Reconnector) Cancel() {
	r.cancel()
}

func (r *Reconnector) run(ctx context.Context) {
	defer close(r.done)
	delay := reconnectInterval
	for {
		client, err := r.dial(ctx, r.friend)
		if err != nil {
			delay = reconnectInterval
		} else {
			r.onConnected(client)
			delay = reconnectInterval * 2
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}
