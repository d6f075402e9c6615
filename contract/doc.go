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

// Package contract loads endpoint response contracts from configuration
// files and turns them into frozen response collections.
//
// A contract file lists, per endpoint, the declared responses in collection
// order:
//
//	endpoints:
//	  get_user:
//	    responses:
//	      - type: User
//	        codec: json
//	        codes: ["2xx"]
//	      - type: Problem
//	        codec: json
//	        codes: ["400-599"]
//
// Files are read with viper, so YAML, JSON and TOML all work. Viper folds
// keys to lower case, which makes endpoint names case-insensitive.
//
// Payload type tags are bound to Go prototypes through Types; the codec
// named by each response decodes into a fresh value of the prototype's type.
package contract
