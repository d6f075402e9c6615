/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":        zap.InfoLevel,
		"info":    zap.InfoLevel,
		"DEBUG":   zap.DebugLevel,
		"warning": zap.WarnLevel,
		" error ": zap.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "statusmap.log")
	log, err := New(Config{Level: "info", Format: "json", Outputs: []string{path}})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("declared response", zap.String("payload_type", "User"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "declared response", entry["msg"])
	assert.Equal(t, "User", entry["payload_type"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_RotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotated.log")
	log, err := New(Config{Format: "console", Outputs: []string{path}, Rotation: Rotation{Enable: true}})
	require.NoError(t, err)
	log.Warn("rejected response declaration")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rejected response declaration")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Config{Level: "nope"})
	assert.Error(t, err)

	_, err = New(Config{Format: "xml"})
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	log, err := New(Default())
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))
}
