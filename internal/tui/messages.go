package tui

// debounceMsg fires once typing has paused. It is stale unless seq matches
// the model's current input sequence.
type debounceMsg struct {
	seq int
}

type generatedMsg struct {
	seq      int
	password string
	err      error
}

type copiedMsg struct {
	err error
}

type clearToastMsg struct {
	seq int
}
