// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/katalvlaran/lingo/core"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	fields := []core.Field{
		{Name: core.FieldTitle, Value: "Data mining"},
		{Name: core.FieldSnippet, Value: "  "},
		{Name: core.FieldURL, Value: "http://example.org"},
	}
	d, err := core.NewDocument("d1", "en", fields...)
	require.NoError(t, err)

	fields[0].Value = "changed" // input slice is copied
	v, ok := d.Field(core.FieldTitle)
	require.True(t, ok)
	require.Equal(t, "Data mining", v)

	_, ok = d.Field("missing")
	require.False(t, ok)

	require.Equal(t, "Data mining http://example.org", d.Text())
	require.Equal(t, "Data mining", d.Text(core.FieldTitle, core.FieldSnippet, "missing"))
	require.Len(t, d.Fields(), 3)
}

func TestNewDocumentErrors(t *testing.T) {
	_, err := core.NewDocument("x", "", core.Field{Name: "", Value: "v"})
	require.ErrorIs(t, err, core.ErrEmptyFieldName)

	_, err = core.NewDocument("x", "", core.Field{Name: "a"}, core.Field{Name: "a"})
	require.ErrorIs(t, err, core.ErrDuplicateField)

	require.Panics(t, func() { core.MustDocument("x", "", core.Field{}) })
}

func TestTokenKind(t *testing.T) {
	require.Equal(t, "sentence-end", core.SentenceEnd.String())
	require.Equal(t, "unknown", core.TokenKind(200).String())
	require.True(t, core.Acronym.IsWordLike())
	require.False(t, core.URL.IsWordLike())
}

func TestClusterTree(t *testing.T) {
	c := core.Cluster{
		Label:     "root",
		Documents: []core.ClusterDocument{{Index: 3}, {Index: 1}},
		Subclusters: []core.Cluster{
			{Label: "child", Documents: []core.ClusterDocument{{Index: 1}, {Index: 0}}},
		},
	}
	require.Equal(t, []int{0, 1, 3}, c.AllDocuments())
	require.Equal(t, 3, c.Size())

	cp := c.Clone()
	cp.Subclusters[0].Documents[0].Index = 9
	require.Equal(t, 1, c.Subclusters[0].Documents[0].Index)
}
