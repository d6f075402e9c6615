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

package response

import "go.uber.org/zap"

// Option configures a Collection at construction time.
type Option func(*Collection)

// WithLogger sets the logger used to report accepted and rejected
// declarations. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(c *Collection) {
		if l != nil {
			c.log = l
		}
	}
}

// WithName names the endpoint contract the collection belongs to. The name
// shows up in logs and in Explain output.
func WithName(name string) Option {
	return func(c *Collection) { c.name = name }
}
