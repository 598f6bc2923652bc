package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	for _, name := range []string{"check", "content", "cv", "debug", "prefs", "serve", "version"} {
		sub, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		require.NotNil(t, sub)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"content", "section", "theme"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "missing --%s", name)
	}
}

func TestParseFragment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"folio://#projects", "projects"},
		{"#contact", "contact"},
		{"hobbies", "hobbies"},
		{"folio://experience", "experience"},
		{"folio://#", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseFragment(tt.in), tt.in)
	}
}
