package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	DisableColor()
	m.Run()
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("classic")

	SetTheme("NEON")
	assert.Equal(t, "neon", Current().Name)

	SetTheme("mono")
	assert.Equal(t, "mono", Current().Name)
	assert.Equal(t, "ok", Current().SymOK)

	SetTheme("unknown")
	assert.Equal(t, "classic", Current().Name)
}

func TestOKFail(t *testing.T) {
	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "boom")
	assert.Equal(t, "✔ added\n✖ boom\n", buf.String())
}

func TestPanel_MonoUsesASCII(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, Bullets([]string{"read", "walk dog"}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "+-"))
	assert.Equal(t, "| - read     |", lines[1])
	assert.Equal(t, "| - walk dog |", lines[2])
}
