// Copyright 2026 The zxc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zx-lang/zxc/pkg/stream"
)

func TestEmptyStream(t *testing.T) {
	s := stream.New[int](nil)
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Len())
	_, ok := s.Next()
	assert.False(t, ok)
}

func TestPeekDoesNotAdvance(t *testing.T) {
	s := stream.New([]int{1, 2, 3})
	v, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = s.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, s.Current())
}

func TestNextAdvances(t *testing.T) {
	s := stream.New([]int{1, 2, 3})
	var got []int
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.True(t, s.Empty())
}

func TestPeekAtOutOfRange(t *testing.T) {
	s := stream.New([]int{1, 2, 3})
	_, ok := s.PeekAt(10)
	assert.False(t, ok)
	_, ok = s.PeekAt(-1)
	assert.False(t, ok)
	v, ok := s.PeekAt(2)
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestSetPositionRestoresCursor(t *testing.T) {
	s := stream.New([]int{1, 2, 3, 4})
	s.Next()
	s.Next()
	mark := s.Current()
	s.Next()
	s.SetPosition(mark)
	v, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestRestReturnsIndependentCopy(t *testing.T) {
	s := stream.New([]int{1, 2, 3, 4})
	s.Next()
	rest := s.Rest()
	assert.Equal(t, 3, rest.Len())
	rest.Next()
	assert.Equal(t, 3, s.Len(), "advancing the copy must not affect the original")
}
