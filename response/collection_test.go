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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/statusmap"
	"dirpx.dev/statusmap/apis"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
)

func TestAdd_ConflictLeavesCollectionUnchanged(t *testing.T) {
	c := NewCollection()
	x := decl("X", "[200, 300]")
	require.NoError(t, c.Add(x))

	err := c.Add(decl("Y", "[250, 350]"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))

	var ce *ConflictError
	require.True(t, errors.As(err, &ce))
	require.Len(t, ce.Pairs, 1)
	assert.Equal(t, Conflict{
		Index:         0,
		ExistingType:  "X",
		Existing:      rng("[200, 300]"),
		CandidateType: "Y",
		Candidate:     rng("[250, 350]"),
	}, ce.Pairs[0])

	assert.Equal(t, []*Descriptor{x}, c.Descriptors())
}

func TestAdd_StrictlyNestedIsAccepted(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(decl("X", "[200, 300]")))
	require.NoError(t, c.Add(decl("Y", "[201, 300]")))
	require.NoError(t, c.Add(decl("Z", "[250, 260]")))
	assert.Equal(t, 3, c.Len())
}

func TestAdd_DuplicateRangeConflicts(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(decl("X", "*")))
	err := c.Add(decl("Y", "*"))
	assert.ErrorIs(t, err, ErrConflict)

	// the same descriptor added twice collides with itself
	d := decl("Z", "404")
	c2 := NewCollection()
	require.NoError(t, c2.Add(d))
	assert.ErrorIs(t, c2.Add(d), ErrConflict)
}

func TestConflictError_EnumeratesAllPairs(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(decl("A", "[200, 299]", "[400, 499]")))
	require.NoError(t, c.Add(decl("B", "[300, 399]")))

	err := c.Add(decl("C", "[250, 350]", "[450, 550]", "404"))
	var ce *ConflictError
	require.True(t, errors.As(err, &ce))
	got := make([]string, len(ce.Pairs))
	for i, p := range ce.Pairs {
		got[i] = p.String()
	}
	assert.Equal(t, []string{
		"[200, 299] (A at #0) conflicts with [250, 350] (C)",
		"[400, 499] (A at #0) conflicts with [450, 550] (C)",
		"[300, 399] (B at #1) conflicts with [250, 350] (C)",
	}, got)
	assert.Equal(t, 2, c.Len())

	assert.Equal(t, "conflict", ce.ErrorCode())
	assert.Equal(t, "collection.range_conflict", ce.ErrorReason())
	details := ce.ErrorDetails()
	require.Len(t, details, 3)
	assert.Equal(t, "descriptors[1]", details[2].Field)
	assert.Equal(t, "[300, 399]", details[2].Info["existing"])
	assert.Contains(t, ce.Error(), "add C: 3 conflicting range pair(s)")

	var coded apis.CodedError = ce
	assert.NotNil(t, coded)
}

func TestInsert(t *testing.T) {
	c := NewCollection()
	a, b, z := decl("A", "[200, 299]"), decl("B", "[400, 499]"), decl("Z", "[300, 399]")
	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))
	require.NoError(t, c.Insert(1, z))
	assert.Equal(t, []*Descriptor{a, z, b}, c.Descriptors())

	head := decl("H", "100")
	require.NoError(t, c.Insert(0, head))
	tail := decl("T", "600")
	require.NoError(t, c.Insert(c.Len(), tail))
	assert.Equal(t, []*Descriptor{head, a, z, b, tail}, c.Descriptors())

	err := c.Insert(2, decl("Bad", "[250, 350]"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 5, c.Len())

	err = c.Insert(9, decl("Far", "700"))
	assert.True(t, statusmap.HasCode(err, code.OutOfRange))
	err = c.Insert(-1, decl("Neg", "700"))
	assert.True(t, statusmap.HasReason(err, reason.CollectionIndex))
}

func TestReplaceAt_ExcludesOutgoingDescriptor(t *testing.T) {
	c := NewCollection()
	x, y := decl("X", "[200, 299]"), decl("Y", "[400, 499]")
	require.NoError(t, c.Add(x))
	require.NoError(t, c.Add(y))

	// identical ranges would conflict with X, but X is the one leaving
	x2 := decl("X2", "[200, 299]", "[250, 350]")
	require.NoError(t, c.ReplaceAt(0, x2))
	assert.Equal(t, []*Descriptor{x2, y}, c.Descriptors())

	err := c.ReplaceAt(0, decl("X3", "[450, 550]"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, []*Descriptor{x2, y}, c.Descriptors())

	err = c.ReplaceAt(2, decl("Z", "600"))
	assert.True(t, statusmap.HasCode(err, code.OutOfRange))
}

func TestMutations_RejectNilAndFrozen(t *testing.T) {
	c := NewCollection(WithName("get_user"))
	assert.Equal(t, "get_user", c.Name())
	err := c.Add(nil)
	assert.True(t, statusmap.HasReason(err, reason.CollectionNilDescriptor))

	require.NoError(t, c.Add(decl("X", "2xx")))
	c.Freeze()
	c.Freeze()
	assert.True(t, c.Frozen())

	for _, err := range []error{
		c.Add(decl("Y", "4xx")),
		c.Insert(0, decl("Y", "4xx")),
		c.ReplaceAt(0, decl("Y", "4xx")),
	} {
		assert.True(t, statusmap.HasCode(err, code.FailedPrecondition))
		assert.True(t, statusmap.HasReason(err, reason.CollectionFrozen))
	}
	assert.Equal(t, 1, c.Len())
}

func TestAt(t *testing.T) {
	c := NewCollection()
	x := decl("X", "2xx")
	require.NoError(t, c.Add(x))
	got, ok := c.At(0)
	assert.True(t, ok)
	assert.Same(t, x, got)
	_, ok = c.At(1)
	assert.False(t, ok)
}

func TestCollection_LogsDeclarations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := NewCollection(WithName("get_user"), WithLogger(zap.New(core)))

	require.NoError(t, c.Add(decl("X", "[200, 300]")))
	require.Error(t, c.Add(decl("Y", "[250, 350]")))

	accepted := logs.FilterMessage("declared response").All()
	require.Len(t, accepted, 1)
	assert.Equal(t, "X", accepted[0].ContextMap()["payload_type"])
	assert.Equal(t, "get_user", accepted[0].ContextMap()["endpoint"])

	rejected := logs.FilterMessage("rejected response declaration").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zapcore.WarnLevel, rejected[0].Level)
	assert.Equal(t, int64(1), rejected[0].ContextMap()["conflicts"])
}
