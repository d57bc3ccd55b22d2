//go:build unit

package queries_test

import (
	"testing"

	"github.com/CamiloCortesM/nex-stay/internal/pkg/errs"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagination_Normalize(t *testing.T) {
	t.Run("zero values fall back to defaults", func(t *testing.T) {
		p, err := queries.Pagination{}.Normalize()
		require.NoError(t, err)
		assert.Equal(t, int32(0), p.Offset)
		assert.Equal(t, int32(10), p.Limit)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		p, err := queries.Pagination{Offset: 20, Limit: 5}.Normalize()
		require.NoError(t, err)
		assert.Equal(t, int32(20), p.Offset)
		assert.Equal(t, int32(5), p.Limit)
	})

	t.Run("negative offset is rejected", func(t *testing.T) {
		_, err := queries.Pagination{Offset: -1, Limit: 10}.Normalize()
		assert.ErrorIs(t, err, errs.ErrInvalidPagination)
	})

	t.Run("zero limit with non-zero offset is rejected", func(t *testing.T) {
		_, err := queries.Pagination{Offset: 5, Limit: 0}.Normalize()
		assert.ErrorIs(t, err, errs.ErrInvalidPagination)
	})
}

func TestHasMore(t *testing.T) {
	tests := []struct {
		name      string
		offset    int32
		itemCount int32
		total     int64
		want      bool
	}{
		{"middle page has more", 5, 5, 20, true},
		{"last full page has no more", 20, 5, 25, false},
		{"partial last page has no more", 20, 3, 23, false},
		{"empty result has no more", 0, 0, 0, false},
		{"first of many pages", 0, 10, 11, true},
		{"exactly one page", 0, 10, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queries.HasMore(tt.offset, tt.itemCount, tt.total))
		})
	}
}
