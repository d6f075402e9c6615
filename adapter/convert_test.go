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

package adapter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/codec"
	"dirpx.dev/statusmap/reason"
	"dirpx.dev/statusmap/response"
	"dirpx.dev/statusmap/statusrange"
)

func TestToView_StatusmapError(t *testing.T) {
	_, err := statusrange.Between(300, 200)
	require.Error(t, err)

	v := ToView(fmt.Errorf("declare: %w", err))
	assert.Equal(t, code.Invalid, v.Code)
	assert.Equal(t, reason.RangeBounds, v.Reason)
	assert.Equal(t, "range lower bound exceeds upper bound", v.Message)
	require.Len(t, v.Details, 1)
	assert.Equal(t, map[string]string{"from": "300", "to": "200"}, v.Details[0].Info)
}

func TestToView_ConflictError(t *testing.T) {
	c := response.NewCollection()
	require.NoError(t, c.Add(response.MustDeclare("X", codec.EmptyFactory(), statusrange.MustBetween(200, 300))))
	err := c.Add(response.MustDeclare("Y", codec.EmptyFactory(), statusrange.MustBetween(250, 350)))
	require.Error(t, err)

	v := ToView(err)
	assert.Equal(t, code.Conflict, v.Code)
	assert.Equal(t, reason.CollectionRangeConflict, v.Reason)
	require.Len(t, v.Details, 1)
	assert.Equal(t, "[250, 350]", v.Details[0].Info["candidate"])
}

func TestToView_PlainAndNil(t *testing.T) {
	assert.Equal(t, code.Internal, ToView(errors.New("boom")).Code)
	assert.Equal(t, "boom", ToView(errors.New("boom")).Message)
	assert.Empty(t, ToView(nil).Code)
}

type foreignError struct{ code, reason string }

func (e foreignError) Error() string       { return "foreign" }
func (e foreignError) ErrorCode() string   { return e.code }
func (e foreignError) ErrorReason() string { return e.reason }

func TestToView_NormalizesForeignCodes(t *testing.T) {
	v := ToView(foreignError{code: " Not-Found ", reason: "Upstream/Missing-User"})
	assert.Equal(t, code.NotFound, v.Code)
	assert.Equal(t, reason.Reason("upstream.missing_user"), v.Reason)

	v = ToView(foreignError{code: "??", reason: "not a reason!"})
	assert.Equal(t, code.Internal, v.Code)
	assert.Empty(t, v.Reason)
}
