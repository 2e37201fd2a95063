package resource

import "github.com/pixenlabs/pixen/internal/engine"

// MusicData is the serializable form of a music: a list of lists of sound
// indices. The nesting is preserved because each sequence is independently
// mutable at runtime.
type MusicData struct {
	Seqs [][]int `yaml:"seqs"`
}

func musicDataFrom(mus *engine.Music) MusicData {
	seqs := mus.Sequences()
	data := MusicData{Seqs: make([][]int, len(seqs))}
	for i, seq := range seqs {
		data.Seqs[i] = seq.Items()
	}
	return data
}

func (d MusicData) toMusic() *engine.Music {
	seqs := make([]*engine.Sequence, len(d.Seqs))
	for i, items := range d.Seqs {
		seqs[i] = engine.NewSequence(items)
	}
	mus := engine.NewMusic()
	mus.SetSequences(seqs)
	return mus
}
