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

// Package commands defines the statusmap CLI.
//
// Commands
//
//   - check    Load a contract file and report every endpoint it declares
//   - resolve  Pick the payload type for a status code, optionally decoding a body
//   - explain  Print the resolution trace for one or more status codes
//
// # Configuration
//
// Every persistent flag can also be set through the environment with the
// STATUSMAP_ prefix, dashes replaced by underscores:
//
//	STATUSMAP_CONTRACT=api.yaml STATUSMAP_LOG_LEVEL=debug statusmap check
//
// With --log-format json, failures are printed as an apis.ErrorView document
// so conflict pairs and other details stay machine readable. File outputs can
// be rotated with --log-rotate and the --log-max-* limits.
//
// Payload types are not bound to Go types here, so bodies decode into the
// codec's generic form.
package commands
