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

// Package logging builds the zap logger used by the statusmap command.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects level, encoding and sinks.
type Config struct {
	Level       string   `mapstructure:"level"`
	Format      string   `mapstructure:"format"` // "console" or "json"
	Outputs     []string `mapstructure:"outputs"`
	Development bool     `mapstructure:"development"`
	Rotation    Rotation `mapstructure:"rotation"`
}

// Rotation applies to file outputs only.
type Rotation struct {
	Enable     bool `mapstructure:"enable"`
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// Default logs warnings and above to stderr in console format. Rotation is
// off, but its limits are the ones applied when it is enabled.
func Default() Config {
	return Config{
		Level:    "warn",
		Format:   "console",
		Outputs:  []string{"stderr"},
		Rotation: Rotation{MaxSizeMB: 10, MaxBackups: 1, MaxAgeDays: 7},
	}
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zap.InfoLevel, nil
	case "debug":
		return zap.DebugLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	}
	return zap.InfoLevel, errors.Errorf("logging: unknown level %q", s)
}

// New builds a logger from c. The caller should defer Sync.
func New(c Config) (*zap.Logger, error) {
	lvl, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	level := zap.NewAtomicLevelAt(lvl)

	enc, err := encoder(c)
	if err != nil {
		return nil, err
	}

	outputs := c.Outputs
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}
	cores := make([]zapcore.Core, 0, len(outputs))
	for _, out := range outputs {
		ws, err := sink(out, c.Rotation)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(enc, ws, level))
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)}
	if c.Development {
		opts = append(opts, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), opts...), nil
}

func encoder(c Config) (zapcore.Encoder, error) {
	cfg := zap.NewProductionEncoderConfig()
	if c.Development {
		cfg = zap.NewDevelopmentEncoderConfig()
	}
	switch strings.ToLower(c.Format) {
	case "", "console":
		if c.Development {
			cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		return zapcore.NewConsoleEncoder(cfg), nil
	case "json":
		return zapcore.NewJSONEncoder(cfg), nil
	}
	return nil, errors.Errorf("logging: unknown format %q", c.Format)
}

func sink(out string, r Rotation) (zapcore.WriteSyncer, error) {
	switch strings.ToLower(out) {
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	case "stderr":
		return zapcore.Lock(os.Stderr), nil
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "logging: create %s", dir)
		}
	}
	if r.Enable {
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   out,
			MaxSize:    max(r.MaxSizeMB, 10),
			MaxBackups: max(r.MaxBackups, 1),
			MaxAge:     max(r.MaxAgeDays, 7),
			Compress:   r.Compress,
		}), nil
	}
	f, err := os.OpenFile(out, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "logging: open %s", out)
	}
	return zapcore.Lock(f), nil
}
