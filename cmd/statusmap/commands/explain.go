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

func explainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <endpoint> <status>...",
		Short: "Show every candidate range and the winner for status codes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := a.endpoint(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, s := range args[1:] {
				status, err := parseStatus(s)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out, "---")
				}
				fmt.Fprintln(out, col.Explain(status))
			}
			return nil
		},
	}
}
