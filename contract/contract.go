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

package contract

import (
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"dirpx.dev/statusmap"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/codec"
	"dirpx.dev/statusmap/reason"
	"dirpx.dev/statusmap/response"
	"dirpx.dev/statusmap/statusrange"
)

// File is the decoded shape of a contract file.
type File struct {
	Endpoints map[string]Endpoint `mapstructure:"endpoints"`
}

// Endpoint lists the responses declared for one endpoint, in order.
type Endpoint struct {
	Responses []Response `mapstructure:"responses"`
}

// Response is one "receive Type for Codes" statement.
type Response struct {
	Type  string   `mapstructure:"type"`
	Codec string   `mapstructure:"codec"`
	Codes []string `mapstructure:"codes"`
}

// Types binds payload type tags to prototype values. A nil prototype decodes
// into the codec's generic representation.
type Types map[string]any

// Contracts holds the frozen collection of every loaded endpoint.
type Contracts struct {
	byName map[string]*response.Collection
}

// Endpoint returns the collection declared for name.
func (c *Contracts) Endpoint(name string) (*response.Collection, bool) {
	col, ok := c.byName[name]
	return col, ok
}

// Names returns the endpoint names, sorted.
func (c *Contracts) Names() []string {
	out := make([]string, 0, len(c.byName))
	for n := range c.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

type loader struct {
	types   Types
	generic bool
	codecs  *codec.Registry
	log     *zap.Logger
}

// Option configures loading.
type Option func(*loader)

// WithTypes registers the payload prototypes. Without WithGenericTypes,
// every type referenced by the file must be registered.
func WithTypes(t Types) Option {
	return func(l *loader) {
		for k, v := range t {
			l.types[k] = v
		}
	}
}

// WithGenericTypes accepts type tags with no registration and decodes them
// into generic values (map[string]any for JSON and CBOR).
func WithGenericTypes() Option {
	return func(l *loader) { l.generic = true }
}

// WithRegistry replaces the default codec registry.
func WithRegistry(r *codec.Registry) Option {
	return func(l *loader) {
		if r != nil {
			l.codecs = r
		}
	}
}

// WithLogger sets the logger handed to every built collection.
func WithLogger(log *zap.Logger) Option {
	return func(l *loader) {
		if log != nil {
			l.log = log
		}
	}
}

func newLoader(opts []Option) *loader {
	l := &loader{types: Types{}, codecs: codec.NewRegistry(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads a contract file; the format follows the file extension.
func Load(path string, opts ...Option) (*Contracts, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "contract: read %s", path)
	}
	return decode(v, opts)
}

// Read parses a contract from r. format is a viper config type such as
// "yaml" or "json".
func Read(r io.Reader, format string, opts ...Option) (*Contracts, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, errors.Wrapf(err, "contract: parse %s", format)
	}
	return decode(v, opts)
}

func decode(v *viper.Viper, opts []Option) (*Contracts, error) {
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, errors.Wrap(err, "contract: decode")
	}
	return Build(f, opts...)
}

// Build turns a decoded File into frozen collections. Endpoints are built in
// name order so the first reported error is stable.
func Build(f File, opts ...Option) (*Contracts, error) {
	l := newLoader(opts)
	names := make([]string, 0, len(f.Endpoints))
	for n := range f.Endpoints {
		names = append(names, n)
	}
	sort.Strings(names)

	out := &Contracts{byName: make(map[string]*response.Collection, len(names))}
	for _, name := range names {
		col, err := l.endpoint(name, f.Endpoints[name])
		if err != nil {
			return nil, errors.Wrapf(err, "contract: endpoint %q", name)
		}
		out.byName[name] = col
	}
	l.log.Info("loaded response contracts", zap.Int("endpoints", len(names)))
	return out, nil
}

func (l *loader) endpoint(name string, ep Endpoint) (*response.Collection, error) {
	if len(ep.Responses) == 0 {
		return nil, statusmap.E(code.Invalid, "endpoint declares no responses",
			statusmap.WithReasonOption(reason.ContractEndpoint),
			statusmap.WithDetailOption("endpoint", name))
	}
	col := response.NewCollection(response.WithName(name), response.WithLogger(l.log))
	for i, r := range ep.Responses {
		d, err := l.descriptor(r)
		if err != nil {
			return nil, errors.Wrapf(err, "response #%d", i)
		}
		if err := col.Add(d); err != nil {
			return nil, errors.Wrapf(err, "response #%d", i)
		}
	}
	col.Freeze()
	return col, nil
}

func (l *loader) descriptor(r Response) (*response.Descriptor, error) {
	proto, ok := l.types[r.Type]
	if !ok && !l.generic {
		return nil, statusmap.E(code.NotFound, fmt.Sprintf("payload type %q is not registered", r.Type),
			statusmap.WithReasonOption(reason.ContractType),
			statusmap.WithDetailOption("type", r.Type))
	}
	codecName := r.Codec
	if codecName == "" {
		codecName = "json"
	}
	factory, err := l.codecs.Factory(codecName, proto)
	if err != nil {
		return nil, err
	}
	ranges := make([]statusrange.Range, 0, len(r.Codes))
	for _, lit := range r.Codes {
		rg, err := statusrange.Parse(lit)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, rg)
	}
	return response.Declare(r.Type, factory, ranges...)
}
