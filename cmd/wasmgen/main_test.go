package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-builder/samples"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	for _, s := range samples.All() {
		assert.Contains(t, out, s.Name)
		assert.Contains(t, out, s.Description)
	}
}

func TestBuildToStdout(t *testing.T) {
	out, _, err := execute(t, "build", "add")
	require.NoError(t, err)

	s, _ := samples.Lookup("add")
	want, err := s.Encode()
	require.NoError(t, err)
	assert.Equal(t, want, []byte(out))
}

func TestBuildToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fib.wasm")
	out, _, err := execute(t, "build", "fibonacci", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, data[:8])
	assert.Contains(t, out, path)
}

func TestBuildUnknownSample(t *testing.T) {
	_, _, err := execute(t, "build", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sample")
}

func TestInspect(t *testing.T) {
	out, _, err := execute(t, "inspect", "imports", "--hex")
	require.NoError(t, err)

	for _, want := range []string{"type", "import", "function", "export", "code", "total", "import env.print_i32", "func[2]", "func[3]", "call 2", "00 61 73 6d"} {
		assert.Contains(t, out, want)
	}
}

func TestInspectIndentsBlocks(t *testing.T) {
	out, _, err := execute(t, "inspect", "factorial")
	require.NoError(t, err)
	assert.Contains(t, out, "\n    loop")
	assert.Contains(t, out, "\n      br 0")
}

func TestRun(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "add", "2", "3"}, "5\n"},
		{[]string{"add", "add", "-7", "3"}, "-4\n"},
		{[]string{"fibonacci", "fib", "10"}, "55\n"},
		{[]string{"factorial", "fact", "5"}, "120\n"},
		{[]string{"dispatch", "dispatch", "2", "6", "7"}, "42\n"},
		{[]string{"counter", "next"}, "11\n"},
		{[]string{"imports", "run", "5"}, "10\n5\n"},
		{[]string{"imports", "run", "-3"}, "-6\n-3\n"},
		{[]string{"--memory-limit", "16", "add", "add", "-1", "-2"}, "-3\n"},
		{[]string{"memory", "size"}, "1\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := execute(t, append([]string{"run"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown export", []string{"add", "sub", "1"}, "exports: add"},
		{"missing argument", []string{"add", "add", "1"}, "argument count"},
		{"bad argument", []string{"add", "add", "1", "x"}, "cannot parse"},
		{"trap", []string{"dispatch", "dispatch", "9", "1", "1"}, "call dispatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"run"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLogging(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "list")
	require.Error(t, err)

	_, logs, err := execute(t, "--log-level", "debug", "--log-json", "inspect", "add")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"module built"`)
	assert.Contains(t, logs, `"logger":"builder"`)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTUICallWithArguments(t *testing.T) {
	m := newTUIModel()
	defer m.close()
	require.Equal(t, "add", m.samples[0].Name)

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	m.Update(cmd())
	require.NoError(t, m.err)
	require.Equal(t, stateSelectFunc, m.state)
	require.Len(t, m.funcs, 1)

	m.Update(key("enter"))
	require.Equal(t, stateInputArgs, m.state)
	require.Len(t, m.inputs, 2)
	m.inputs[0].SetValue("20")
	m.inputs[1].SetValue("22")

	m.Update(m.callFunction())
	assert.Equal(t, stateShowResult, m.state)
	assert.NoError(t, m.err)
	assert.Equal(t, "42", m.result)
	assert.Contains(t, m.View(), "42")

	m.Update(key("enter"))
	assert.Equal(t, stateSelectFunc, m.state)
	m.Update(key("esc"))
	assert.Equal(t, stateSelectSample, m.state)
	assert.Nil(t, m.instance)
}

func TestTUIHostOutput(t *testing.T) {
	m := newTUIModel()
	defer m.close()

	for m.samples[m.sample].Name != "imports" {
		m.Update(key("down"))
	}
	_, cmd := m.Update(key("enter"))
	m.Update(cmd())
	require.NoError(t, m.err)

	for m.funcs[m.selected].Name != "run" {
		m.Update(key("down"))
	}
	m.Update(key("enter"))
	m.inputs[0].SetValue("3")
	m.Update(m.callFunction())

	assert.NoError(t, m.err)
	assert.Equal(t, "6\n3\n", m.printed)
	assert.Equal(t, "", m.result)
}
