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

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"dirpx.dev/statusmap/adapter"
	"dirpx.dev/statusmap/contract"
	"dirpx.dev/statusmap/internal/logging"
	"dirpx.dev/statusmap/response"
)

// app is the state shared by subcommands once the root pre-run succeeds.
type app struct {
	v         *viper.Viper
	log       *zap.Logger
	contracts *contract.Contracts
}

type cli struct {
	root *cobra.Command
	app  *app
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newCLI().execute()
}

func newCLI() *cli {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "statusmap",
		Short:         "Inspect status-code response contracts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	def := logging.Default()
	pf := root.PersistentFlags()
	pf.StringP("contract", "c", "", "contract file (yaml, json or toml)")
	pf.String("log-level", def.Level, "log level: debug, info, warn, error")
	pf.String("log-format", def.Format, "log and error format: console or json")
	pf.StringSlice("log-output", def.Outputs, "log outputs: stdout, stderr or file paths")
	pf.Bool("log-development", def.Development, "development logging (caller-friendly keys, colored levels)")
	pf.Bool("log-rotate", def.Rotation.Enable, "rotate file outputs")
	pf.Int("log-max-size-mb", def.Rotation.MaxSizeMB, "rotate a log file once it reaches this size")
	pf.Int("log-max-backups", def.Rotation.MaxBackups, "rotated files to keep")
	pf.Int("log-max-age-days", def.Rotation.MaxAgeDays, "days to keep rotated files")
	pf.Bool("log-compress", def.Rotation.Compress, "gzip rotated files")

	a.v.SetEnvPrefix("STATUSMAP")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(pf)

	root.AddCommand(checkCmd(a), resolveCmd(a), explainCmd(a))
	return &cli{root: root, app: a}
}

func (c *cli) execute() error {
	err := c.root.Execute()
	if err != nil {
		c.app.report(c.root.ErrOrStderr(), err)
	}
	return err
}

// report prints err as an apis.ErrorView document when the json format is
// selected, otherwise as a single line.
func (a *app) report(w io.Writer, err error) {
	if strings.EqualFold(a.v.GetString("log-format"), "json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if jerr := enc.Encode(adapter.ToView(err)); jerr == nil {
			return
		}
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func (a *app) logConfig() logging.Config {
	return logging.Config{
		Level:       a.v.GetString("log-level"),
		Format:      a.v.GetString("log-format"),
		Outputs:     a.v.GetStringSlice("log-output"),
		Development: a.v.GetBool("log-development"),
		Rotation: logging.Rotation{
			Enable:     a.v.GetBool("log-rotate"),
			MaxSizeMB:  a.v.GetInt("log-max-size-mb"),
			MaxBackups: a.v.GetInt("log-max-backups"),
			MaxAgeDays: a.v.GetInt("log-max-age-days"),
			Compress:   a.v.GetBool("log-compress"),
		},
	}
}

func (a *app) setupLogger() error {
	log, err := logging.New(a.logConfig())
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// load reads the contract file named by --contract.
func (a *app) load() error {
	path := a.v.GetString("contract")
	if path == "" {
		return errors.New("no contract file: pass --contract or set STATUSMAP_CONTRACT")
	}
	c, err := contract.Load(path, contract.WithGenericTypes(), contract.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.contracts = c
	return nil
}

func (a *app) endpoint(name string) (*response.Collection, error) {
	if err := a.load(); err != nil {
		return nil, err
	}
	col, ok := a.contracts.Endpoint(name)
	if !ok {
		return nil, errors.Errorf("unknown endpoint %q (have %s)", name, strings.Join(a.contracts.Names(), ", "))
	}
	return col, nil
}

func parseStatus(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "status %q", s)
	}
	return n, nil
}
