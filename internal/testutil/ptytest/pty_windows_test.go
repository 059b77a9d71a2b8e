//go:build windows

package ptytest

import (
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConPTYSession(t *testing.T) {
	s, err := NewSession(exec.Command("cmd.exe", "/c", "echo", "hello_from_conpty"), 80, 25)
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, s.WaitFor("hello_from_conpty", 5*time.Second), "screen:\n%s", s.Screen())
	require.NoError(t, s.Wait(5*time.Second))
}
