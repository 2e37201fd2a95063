package engine

import "sync"

// ChannelState is a plain-value copy of a channel's content.
type ChannelState struct {
	Gain   float64
	Detune int
}

// Channel is a mutex-guarded playback channel.
type Channel struct {
	mu    sync.Mutex
	state ChannelState
}

// NewChannel creates a channel with unit gain and no detune.
func NewChannel() *Channel {
	return &Channel{state: ChannelState{Gain: 1.0}}
}

// State copies the channel content out under its lock.
func (c *Channel) State() ChannelState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetState installs new channel content under its lock.
func (c *Channel) SetState(s ChannelState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}
