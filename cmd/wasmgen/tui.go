package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wippyai/wasm-builder/engine"
	"github.com/wippyai/wasm-builder/samples"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the samples and call their exports interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newTUIModel()
			defer m.close()
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()
			return err
		},
	}
}

type tuiState int

const (
	stateSelectSample tuiState = iota
	stateSelectFunc
	stateInputArgs
	stateShowResult
)

type tuiModel struct {
	err      error
	eng      *engine.Engine
	instance *engine.Instance
	hostOut  *bytes.Buffer
	result   string
	printed  string
	samples  []samples.Sample
	funcs    []engine.FuncInfo
	inputs   []textinput.Model
	sample   int
	selected int
	focusIdx int
	state    tuiState
}

type loadedMsg struct {
	err      error
	eng      *engine.Engine
	instance *engine.Instance
	funcs    []engine.FuncInfo
}

type callResultMsg struct {
	err     error
	result  string
	printed string
}

func newTUIModel() *tuiModel {
	return &tuiModel{
		samples: samples.All(),
		hostOut: &bytes.Buffer{},
		state:   stateSelectSample,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) close() {
	ctx := context.Background()
	if m.instance != nil {
		m.instance.Close(ctx)
		m.instance = nil
	}
	if m.eng != nil {
		m.eng.Close(ctx)
		m.eng = nil
	}
}

// loadSample returns a command that instantiates the selected sample. The
// engine is created on first use and shared by later loads.
func (m *tuiModel) loadSample() tea.Cmd {
	s := m.samples[m.sample]
	eng, out := m.eng, m.hostOut
	return func() tea.Msg {
		ctx := context.Background()
		bin, err := s.Encode()
		if err != nil {
			return loadedMsg{err: err, eng: eng}
		}
		if eng == nil {
			if eng, err = engine.New(ctx, nil); err != nil {
				return loadedMsg{err: err}
			}
			if err := eng.EnvModule(out); err != nil {
				return loadedMsg{err: err, eng: eng}
			}
		}
		inst, err := eng.Load(ctx, bin, s.Name)
		if err != nil {
			return loadedMsg{err: err, eng: eng}
		}
		return loadedMsg{eng: eng, instance: inst, funcs: inst.Exports()}
	}
}

func (m *tuiModel) callFunction() tea.Msg {
	ctx := context.Background()
	f := m.funcs[m.selected]

	raw := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		raw[i] = strings.TrimSpace(input.Value())
	}
	args, err := engine.EncodeArgs(f, raw)
	if err != nil {
		return callResultMsg{err: err}
	}

	m.hostOut.Reset()
	results, err := m.instance.Call(ctx, f.Name, args...)
	printed := m.hostOut.String()
	if err != nil {
		return callResultMsg{err: err, printed: printed}
	}
	return callResultMsg{result: strings.Join(engine.DecodeResults(f, results), " "), printed: printed}
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.close()
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				m.close()
				return m, tea.Quit
			}

		case "up", "k":
			switch m.state {
			case stateSelectSample:
				if m.sample > 0 {
					m.sample--
				}
			case stateSelectFunc:
				if m.selected > 0 {
					m.selected--
				}
			}

		case "down", "j":
			switch m.state {
			case stateSelectSample:
				if m.sample < len(m.samples)-1 {
					m.sample++
				}
			case stateSelectFunc:
				if m.selected < len(m.funcs)-1 {
					m.selected++
				}
			}

		case "enter":
			switch m.state {
			case stateSelectSample:
				m.err = nil
				return m, m.loadSample()

			case stateSelectFunc:
				if len(m.funcs) == 0 {
					return m, nil
				}
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callFunction
				}
				m.state = stateInputArgs
				return m, textinput.Blink

			case stateInputArgs:
				return m, m.callFunction

			case stateShowResult:
				m.resetResult()
				m.state = stateSelectFunc
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateSelectFunc:
				if m.instance != nil {
					m.instance.Close(context.Background())
					m.instance = nil
				}
				m.funcs = nil
				m.selected = 0
				m.state = stateSelectSample
			case stateInputArgs:
				m.inputs = nil
				m.state = stateSelectFunc
			case stateShowResult:
				m.resetResult()
				m.state = stateSelectFunc
			}
		}

	case loadedMsg:
		if msg.eng != nil {
			m.eng = msg.eng
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.instance = msg.instance
		m.funcs = msg.funcs
		m.selected = 0
		m.state = stateSelectFunc

	case callResultMsg:
		m.result = msg.result
		m.printed = msg.printed
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *tuiModel) resetResult() {
	m.result = ""
	m.printed = ""
	m.err = nil
}

func (m *tuiModel) prepareInputs() {
	f := m.funcs[m.selected]
	m.inputs = make([]textinput.Model, len(f.Params))
	for i, p := range f.Params {
		ti := textinput.New()
		ti.Placeholder = p.String()
		ti.Prompt = fmt.Sprintf("arg%d: ", i)
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wasmgen"))
	if m.state != stateSelectSample {
		b.WriteString(" ")
		b.WriteString(m.samples[m.sample].Name)
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectSample:
		b.WriteString("Select a sample:\n\n")
		for i, s := range m.samples {
			line := s.Name + "  " + s.Description
			if i == m.sample {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter load • q quit"))

	case stateSelectFunc:
		b.WriteString("Select a function to call:\n\n")
		for i, f := range m.funcs {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + f.Name + f.Signature()))
			} else {
				b.WriteString("  " + formatFunc(f))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • esc back • q quit"))

	case stateInputArgs:
		f := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", nameStyle.Render(f.Name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(f.Params[i].String()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		f := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", nameStyle.Render(f.Name)))
		if m.printed != "" {
			b.WriteString(m.printed)
		}
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else if m.result != "" {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func formatFunc(f engine.FuncInfo) string {
	return nameStyle.Render(f.Name) + typeStyle.Render(f.Signature())
}
