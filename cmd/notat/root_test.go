package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffline/notat/pkg/errors"
)

func TestNewRootCmdHasCommands(t *testing.T) {
	rootCmd := NewRootCmd()

	want := map[string]bool{
		"list": false, "resolve": false, "new": false,
		"demo": false, "genconfig": false, "help": false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		assert.True(t, found, "command %s should be registered", name)
	}
}

func TestListCommand(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"list"})

	require.NoError(t, rootCmd.Execute())
}

func TestResolveCommand(t *testing.T) {
	t.Run("known type", func(t *testing.T) {
		rootCmd := NewRootCmd()
		rootCmd.SetArgs([]string{"resolve", "Measure"})

		require.NoError(t, rootCmd.Execute())
	})

	t.Run("unknown type", func(t *testing.T) {
		rootCmd := NewRootCmd()
		rootCmd.SetArgs([]string{"resolve", "Nocturne"})

		err := rootCmd.Execute()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("missing argument", func(t *testing.T) {
		rootCmd := NewRootCmd()
		rootCmd.SetArgs([]string{"resolve"})

		assert.Error(t, rootCmd.Execute())
	})
}

func TestNewCommand(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"new", "Score"})

	require.NoError(t, rootCmd.Execute())
}

func TestDemoCommand(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"demo"})

	require.NoError(t, rootCmd.Execute())
}

func TestGenConfigCommand(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"genconfig"})

	require.NoError(t, rootCmd.Execute())
}
