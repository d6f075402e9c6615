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
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"dirpx.dev/statusmap"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
)

func resolveCmd(a *app) *cobra.Command {
	var body string
	cmd := &cobra.Command{
		Use:   "resolve <endpoint> <status>",
		Short: "Print the payload type declared for a status code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := a.endpoint(args[0])
			if err != nil {
				return err
			}
			status, err := parseStatus(args[1])
			if err != nil {
				return err
			}
			d, ok := col.Resolve(status)
			if !ok {
				return statusmap.Errorf(code.NotFound, reason.ResponseUnmatched,
					"%s: no response declared for status %d", col.Name(), status)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, d.PayloadType())
			if body == "" {
				return nil
			}

			data, err := readBody(cmd.InOrStdin(), body)
			if err != nil {
				return err
			}
			v, err := d.Decode(data)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}
	cmd.Flags().StringVarP(&body, "body", "b", "", `decode this file ("-" for stdin) with the resolved payload codec`)
	return cmd
}

func readBody(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(path)
	return data, errors.Wrapf(err, "read %s", path)
}
