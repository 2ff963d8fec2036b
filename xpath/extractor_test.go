package xpath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/scrapebench"
	"github.com/fwojciec/scrapebench/xpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(tb testing.TB) *scrapebench.Document {
	tb.Helper()

	path := filepath.Join("..", "testdata", "page.html")
	raw, err := os.ReadFile(path)
	require.NoError(tb, err)
	return scrapebench.NewDocument(path, string(raw))
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns serialized strings for every field on the fixture", func(t *testing.T) {
		t.Parallel()

		// Given an extractor bound to the reference page
		e, err := xpath.NewExtractor(loadFixture(t))
		require.NoError(t, err)

		// When extracting
		result, err := e.Extract()

		// Then every path yields plain strings
		require.NoError(t, err)
		require.Len(t, result, 4)
		assert.Equal(t, scrapebench.Fields(), result.Fields())
		for _, v := range result {
			assert.Equal(t, scrapebench.KindStrings, v.Kind)
		}
		assert.Equal(t, []string{"monty python soundtracks collection"}, result[0].Strings)
		assert.Equal(t, []string{" 28 nov 2019 15:40"}, result[1].Strings)
		assert.Equal(t, []string{"sabian"}, result[2].Strings)
		assert.Equal(t, []string{"https://avxhm.se/blogs/sabian/"}, result[3].Strings)
	})

	t.Run("skips paths with no matches", func(t *testing.T) {
		t.Parallel()

		doc := scrapebench.NewDocument("inline", `<html><body><h1 class="title-link">Sample</h1></body></html>`)
		e, err := xpath.NewExtractor(doc)
		require.NoError(t, err)

		result, err := e.Extract()

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		e, err := xpath.NewExtractor(loadFixture(t))
		require.NoError(t, err)

		first, err := e.Extract()
		require.NoError(t, err)
		second, err := e.Extract()
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("field order changes positions but not values", func(t *testing.T) {
		t.Parallel()

		doc := loadFixture(t)
		forward, err := xpath.NewExtractor(doc)
		require.NoError(t, err)
		shuffled, err := xpath.NewExtractor(doc, xpath.WithFields(
			scrapebench.FieldPostingDate,
			scrapebench.FieldPostingUserURL,
			scrapebench.FieldTitle,
			scrapebench.FieldPostingUser,
		))
		require.NoError(t, err)

		a, err := forward.Extract()
		require.NoError(t, err)
		b, err := shuffled.Extract()
		require.NoError(t, err)

		assert.ElementsMatch(t, a.Strings(), b.Strings())
	})

	t.Run("reused selector yields the same strings", func(t *testing.T) {
		t.Parallel()

		e, err := xpath.NewExtractor(loadFixture(t), xpath.WithTreeReuse())
		require.NoError(t, err)

		first, err := e.Extract()
		require.NoError(t, err)
		second, err := e.Extract()
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestNewExtractor(t *testing.T) {
	t.Parallel()

	t.Run("compiles every configured path", func(t *testing.T) {
		t.Parallel()

		e, err := xpath.NewExtractor(loadFixture(t))
		require.NoError(t, err)

		assert.Len(t, e.Patterns(), 4)
	})

	t.Run("rejects paths that do not compile", func(t *testing.T) {
		t.Parallel()

		_, err := xpath.NewExtractor(loadFixture(t),
			xpath.WithFields(scrapebench.FieldTitle),
			xpath.WithPaths(map[scrapebench.Field]string{scrapebench.FieldTitle: "//h1[@"}),
		)

		require.Error(t, err)
		assert.Equal(t, scrapebench.EINVALID, scrapebench.ErrorCode(err))
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		_, err := xpath.NewExtractor(loadFixture(t), xpath.WithFields("price"))

		assert.Equal(t, scrapebench.EINVALID, scrapebench.ErrorCode(err))
	})
}

func BenchmarkExtractor_Extract(b *testing.B) {
	b.Run("reparse", func(b *testing.B) {
		benchmarkExtract(b)
	})

	b.Run("reuse_tree", func(b *testing.B) {
		benchmarkExtract(b, xpath.WithTreeReuse())
	})
}

func benchmarkExtract(b *testing.B, opts ...xpath.Option) {
	b.Helper()

	e, err := xpath.NewExtractor(loadFixture(b), opts...)
	require.NoError(b, err)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := e.Extract(); err != nil {
			b.Fatal(err)
		}
	}
}
