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
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a contract file and list its endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range a.contracts.Names() {
				col, _ := a.contracts.Endpoint(name)
				fmt.Fprintf(out, "%s: %d response(s)\n", name, col.Len())
				for i, d := range col.Descriptors() {
					fmt.Fprintf(out, "  #%d %s\n", i, d)
				}
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}
