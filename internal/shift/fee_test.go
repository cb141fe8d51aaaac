package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeSingleShifts(t *testing.T) {
	cases := map[string]uint32{
		Morning: 299,
		Noon:    349,
		Evening: 299,
		Night:   299,
	}
	for id, want := range cases {
		got, err := Fee([]string{id})
		require.NoError(t, err, id)
		assert.Equal(t, want, got, id)
	}
}

func TestFeeCombinations(t *testing.T) {
	cases := []struct {
		name string
		ids  []string
		want uint32
	}{
		{"morning+noon", []string{Morning, Noon}, 549},
		{"noon+evening", []string{Noon, Evening}, 549},
		{"morning+noon+evening", []string{Morning, Noon, Evening}, 749},
		{"all four", []string{Morning, Noon, Evening, Night}, 999},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Fee(tc.ids)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFeeOrderIndependent(t *testing.T) {
	a, errA := Fee([]string{Night, Morning, Noon, Evening})
	b, errB := Fee([]string{Morning, Noon, Evening, Night})
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)

	c, errC := Fee([]string{Evening, Noon})
	d, errD := Fee([]string{Noon, Evening})
	require.NoError(t, errC)
	require.NoError(t, errD)
	assert.Equal(t, c, d)
}

func TestFeeDuplicatesCollapse(t *testing.T) {
	got, err := Fee([]string{Morning, Morning, Noon})
	require.NoError(t, err)
	assert.Equal(t, uint32(549), got)
}

func TestFeeUnpricedCombinations(t *testing.T) {
	for _, ids := range [][]string{
		{},
		{"afternoon"},
		{Morning, Evening},
		{Noon, Night},
		{Morning, Night},
	} {
		_, err := Fee(ids)
		assert.ErrorIs(t, err, ErrUnpricedCombination, "%v", ids)
	}
}

func TestTotalAmount(t *testing.T) {
	cases := []struct {
		name string
		ids  []string
		want uint32
	}{
		{"morning only", []string{Morning}, 349},
		{"morning+noon", []string{Morning, Noon}, 599},
		{"all four", []string{Morning, Noon, Evening, Night}, 1049},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TotalAmount(tc.ids)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := TotalAmount([]string{Morning, Evening})
	assert.ErrorIs(t, err, ErrUnpricedCombination)
}

func TestCombinationKey(t *testing.T) {
	assert.Equal(t, "evening,noon", CombinationKey([]string{Noon, Evening}))
	assert.Equal(t, "morning", CombinationKey([]string{" Morning "}))
	assert.Equal(t, "", CombinationKey(nil))
}
