package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pass-gen/internal/adapter"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/internal/validators"
	"github.com/MKhiriev/go-pass-gen/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	debounceDelay  = 600 * time.Millisecond
	toastDuration  = 3 * time.Second
	minInputLength = 3

	msgPasswordCopied = "Password copied!"
	msgCopyFailed     = "Failed to copy password to clipboard"
)

const (
	fieldPepper = iota
	fieldWord
	fieldCount
)

type generatorModel struct {
	ctx       context.Context
	adapter   adapter.GeneratorAdapter
	validator validators.Validator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	inputs [fieldCount]textinput.Model
	focus  int

	// seq identifies the latest input state; debounce ticks and results
	// carrying an older seq are dropped.
	seq        int
	interacted bool

	password string
	loading  bool
	errMsg   string

	toast    string
	toastSeq int

	showBuildInfo bool

	writeClipboard func(string) error
}

func newGeneratorModel(ctx context.Context, generator adapter.GeneratorAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) generatorModel {
	pepper := textinput.New()
	pepper.Placeholder = "Enter a master password"
	pepper.EchoMode = textinput.EchoPassword
	pepper.EchoCharacter = '•'
	pepper.Prompt = ""
	pepper.Focus()

	word := textinput.New()
	word.Placeholder = "Enter a base word"
	word.Prompt = ""

	return generatorModel{
		ctx:            ctx,
		adapter:        generator,
		validator:      validators.NewDerivationRequestValidator(minInputLength),
		buildInfo:      buildInfo,
		logger:         logger,
		inputs:         [fieldCount]textinput.Model{pepper, word},
		writeClipboard: clipboard.WriteAll,
	}
}

func (m generatorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m generatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, m.cmdGenerate(msg.seq, m.pepper(), m.word())

	case generatedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = "Error: " + msg.err.Error()
			return m, nil
		}
		m.password = msg.password
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("clipboard write failed")
			m.errMsg = msgCopyFailed
			return m, nil
		}
		m.toast = msgPasswordCopied
		m.toastSeq++
		seq := m.toastSeq
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return clearToastMsg{seq: seq}
		})

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m generatorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.esc):
		return m, tea.Quit
	case key.Matches(msg, keys.next):
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case key.Matches(msg, keys.prev):
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case key.Matches(msg, keys.copy):
		if m.password == "" {
			return m, nil
		}
		return m, m.cmdCopy(m.password)
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and schedules generation
// when its value changed.
func (m generatorModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.inputs[m.focus].Value()

	var inputCmd tea.Cmd
	m.inputs[m.focus], inputCmd = m.inputs[m.focus].Update(msg)

	if m.inputs[m.focus].Value() == before {
		return m, inputCmd
	}

	m.interacted = true
	return m, tea.Batch(inputCmd, m.inputChanged())
}

// inputChanged invalidates any pending work and decides whether a new
// generation should be scheduled.
func (m *generatorModel) inputChanged() tea.Cmd {
	m.seq++
	m.loading = false

	err := m.validator.Validate(m.ctx, models.DerivationRequest{Pepper: m.pepper(), Word: m.word()})
	switch {
	case errors.Is(err, validators.ErrEmptyField):
		m.password = ""
		return nil
	case err != nil:
		return nil
	}

	seq := m.seq
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func (m *generatorModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m generatorModel) cmdGenerate(seq int, pepper, word string) tea.Cmd {
	ctx := utils.WithTraceID(m.ctx, utils.NewTraceID())
	generator := m.adapter
	log := m.logger

	return func() tea.Msg {
		result, err := generator.Generate(ctx, models.DerivationRequest{Pepper: pepper, Word: word})
		if err != nil {
			log.Err(err).Msg("password generation failed")
			return generatedMsg{seq: seq, err: err}
		}
		return generatedMsg{seq: seq, password: result.Password}
	}
}

func (m generatorModel) cmdCopy(password string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{err: write(password)}
	}
}

func (m generatorModel) pepper() string {
	return m.inputs[fieldPepper].Value()
}

func (m generatorModel) word() string {
	return m.inputs[fieldWord].Value()
}
