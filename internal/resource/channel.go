package resource

import "github.com/pixenlabs/pixen/internal/engine"

// ChannelData is the serializable form of a playback channel.
type ChannelData struct {
	Gain   float64 `yaml:"gain"`
	Detune int     `yaml:"detune"`
}

func channelDataFrom(ch *engine.Channel) ChannelData {
	state := ch.State()
	return ChannelData{Gain: state.Gain, Detune: state.Detune}
}

func (d ChannelData) toChannel() *engine.Channel {
	ch := engine.NewChannel()
	ch.SetState(engine.ChannelState{Gain: d.Gain, Detune: d.Detune})
	return ch
}
