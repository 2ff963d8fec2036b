package scrapebench_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/scrapebench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	t.Run("appends values in field order", func(t *testing.T) {
		t.Parallel()

		result, err := scrapebench.Collect(scrapebench.Fields(), func(f scrapebench.Field) (scrapebench.Value, error) {
			return scrapebench.TextValue(f, string(f)), nil
		})

		require.NoError(t, err)
		assert.Equal(t, scrapebench.Fields(), result.Fields())
	})

	t.Run("skips fields that are not found", func(t *testing.T) {
		t.Parallel()

		result, err := scrapebench.Collect(scrapebench.Fields(), func(f scrapebench.Field) (scrapebench.Value, error) {
			if f == scrapebench.FieldPostingDate {
				return scrapebench.Value{}, scrapebench.Errorf(scrapebench.ENOTFOUND, "no date")
			}
			return scrapebench.TextValue(f, string(f)), nil
		})

		require.NoError(t, err)
		assert.Len(t, result, 3)
		assert.NotContains(t, result.Fields(), scrapebench.FieldPostingDate)
	})

	t.Run("aborts on other errors", func(t *testing.T) {
		t.Parallel()

		calls := 0
		result, err := scrapebench.Collect(scrapebench.Fields(), func(f scrapebench.Field) (scrapebench.Value, error) {
			calls++
			return scrapebench.Value{}, errors.New("parser exploded")
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, 1, calls)
	})

	t.Run("returns empty result when nothing is found", func(t *testing.T) {
		t.Parallel()

		result, err := scrapebench.Collect(scrapebench.Fields(), func(f scrapebench.Field) (scrapebench.Value, error) {
			return scrapebench.Value{}, scrapebench.Errorf(scrapebench.ENOTFOUND, "missing")
		})

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
