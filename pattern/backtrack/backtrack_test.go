/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package backtrack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/stepex/pattern"
	"bennypowers.dev/stepex/pattern/backtrack"
)

func TestRegistered(t *testing.T) {
	b, err := pattern.ByName(backtrack.Name)
	require.NoError(t, err)
	assert.Equal(t, backtrack.Name, b.Name())
}

func TestLookaround(t *testing.T) {
	tr, err := pattern.NewTreeRegexp(backtrack.New(), `^I have (\d+)(?= cukes) cukes$`)
	require.NoError(t, err)

	g := tr.Match("I have 42 cukes")
	require.NotNil(t, g)
	require.Len(t, g.Children, 1)
	assert.Equal(t, "42", g.Children[0].Text())
	assert.Equal(t, 7, g.Children[0].Start)
	assert.Equal(t, 9, g.Children[0].End)
}

func TestUnmatchedGroup(t *testing.T) {
	tr := pattern.MustCompile(backtrack.New(), `^a(b)?(c)$`)
	g := tr.Match("ac")
	require.NotNil(t, g)
	require.Len(t, g.Children, 2)
	assert.Nil(t, g.Children[0].Value)
	assert.Equal(t, -1, g.Children[0].Start)
	assert.Equal(t, "c", g.Children[1].Text())
}

func TestCodepointOffsets(t *testing.T) {
	tr := pattern.MustCompile(backtrack.New(), `^🥒 (\d+)$`)
	g := tr.Match("🥒 12")
	require.NotNil(t, g)
	assert.Equal(t, 2, g.Children[0].Start)
	assert.Equal(t, 4, g.Children[0].End)
}

func TestQuoteMeta(t *testing.T) {
	q := backtrack.New().QuoteMeta("a.b(c)")
	tr := pattern.MustCompile(backtrack.New(), "^"+q+"$")
	assert.NotNil(t, tr.Match("a.b(c)"))
	assert.Nil(t, tr.Match("axb(c)"))
}
