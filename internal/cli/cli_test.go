package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/shadegrid/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		expected   *app.Config
		shouldExit bool
		expectErr  string
	}{
		{
			name: "defaults",
			args: nil,
			expected: &app.Config{
				LogFormat: "json", LogLevel: "info", OutputFormat: "text",
			},
		},
		{
			name: "positional path",
			args: []string{"defs/"},
			expected: &app.Config{
				DefsPath: "defs/", LogFormat: "json", LogLevel: "info", OutputFormat: "text",
			},
		},
		{
			name: "long flag wins over shorthand and positional",
			args: []string{"-defs", "a", "-d", "b", "c"},
			expected: &app.Config{
				DefsPath: "a", LogFormat: "json", LogLevel: "info", OutputFormat: "text",
			},
		},
		{
			name: "render with bindings",
			args: []string{"-render", "Add@1", "-bind", "A=uv", "-bind", "Out = result", "-log-format", "TEXT", "-log-level", "debug"},
			expected: &app.Config{
				LogFormat: "text", LogLevel: "debug", OutputFormat: "text",
				Render: "Add@1", Bindings: map[string]string{"A": "uv", "Out": "result"},
			},
		},
		{
			name: "everything else",
			args: []string{"-d", "defs", "-shapes", "shapes", "-no-standard", "-format", "json", "-publish-url", "http://localhost:3000/socket.io/"},
			expected: &app.Config{
				DefsPath: "defs", ShapesPath: "shapes", NoStandard: true,
				LogFormat: "json", LogLevel: "info", OutputFormat: "json",
				PublishURL: "http://localhost:3000/socket.io/",
			},
		},
		{name: "help", args: []string{"-h"}, shouldExit: true},
		{name: "unknown flag", args: []string{"-nope"}, expectErr: "flag provided but not defined: -nope"},
		{name: "bad binding", args: []string{"-render", "Add@1", "-bind", "A"}, expectErr: "expected NAME=VALUE"},
		{name: "binding twice", args: []string{"-render", "Add@1", "-bind", "A=x", "-bind", "A=y"}, expectErr: "bound twice"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, expectErr: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "trace"}, expectErr: "invalid log-level"},
		{name: "bad output format", args: []string{"-format", "yaml"}, expectErr: "invalid output format"},
		{name: "no standard without defs", args: []string{"-no-standard"}, expectErr: "nothing to register"},
		{name: "extra arguments", args: []string{"a", "b"}, expectErr: "unexpected arguments: b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.shouldExit, shouldExit)
			if tc.shouldExit {
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.expected, cfg)
		})
	}
}
