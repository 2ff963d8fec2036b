package scrapebench_test

import (
	"testing"

	"github.com/fwojciec/scrapebench"
	"github.com/stretchr/testify/assert"
)

// stubNode is a minimal scrapebench.Node.
type stubNode struct {
	text string
	html string
}

func (n stubNode) Text() string { return n.text }
func (n stubNode) HTML() string { return n.html }

func TestValue_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value scrapebench.Value
		want  string
	}{
		{
			name:  "text",
			value: scrapebench.TextValue(scrapebench.FieldTitle, `<h1 class="title-link">sample</h1>`),
			want:  `<h1 class="title-link">sample</h1>`,
		},
		{
			name:  "attr",
			value: scrapebench.AttrValue(scrapebench.FieldPostingUserURL, "/u/bob"),
			want:  "/u/bob",
		},
		{
			name:  "node",
			value: scrapebench.NodeValue(scrapebench.FieldTitle, stubNode{text: "sample", html: "<h1>sample</h1>"}),
			want:  "sample",
		},
		{
			name: "nodes",
			value: scrapebench.NodesValue(scrapebench.FieldTitle, []scrapebench.Node{
				stubNode{text: "a"}, stubNode{text: "b"},
			}),
			want: "ab",
		},
		{
			name:  "strings",
			value: scrapebench.StringsValue(scrapebench.FieldTitle, []string{"a", "b"}),
			want:  "ab",
		},
		{
			name:  "nil node",
			value: scrapebench.Value{Field: scrapebench.FieldTitle, Kind: scrapebench.KindNode},
			want:  "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestValue_Markup(t *testing.T) {
	t.Parallel()

	t.Run("node returns outer html", func(t *testing.T) {
		t.Parallel()

		v := scrapebench.NodeValue(scrapebench.FieldTitle, stubNode{text: "sample", html: "<h1>sample</h1>"})

		assert.Equal(t, "<h1>sample</h1>", v.Markup())
	})

	t.Run("nodes concatenate outer html", func(t *testing.T) {
		t.Parallel()

		v := scrapebench.NodesValue(scrapebench.FieldTitle, []scrapebench.Node{
			stubNode{html: "<b>a</b>"}, stubNode{html: "<b>b</b>"},
		})

		assert.Equal(t, "<b>a</b><b>b</b>", v.Markup())
	})

	t.Run("text returns raw substring", func(t *testing.T) {
		t.Parallel()

		v := scrapebench.TextValue(scrapebench.FieldPostingDate, "date:</strong> 2020-01-01</div>")

		assert.Equal(t, "date:</strong> 2020-01-01</div>", v.Markup())
	})
}

func TestValueKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text", scrapebench.KindText.String())
	assert.Equal(t, "nodes", scrapebench.KindNodes.String())
	assert.Equal(t, "unknown", scrapebench.ValueKind(0).String())
}

func TestResult(t *testing.T) {
	t.Parallel()

	result := scrapebench.Result{
		scrapebench.TextValue(scrapebench.FieldTitle, "sample"),
		scrapebench.AttrValue(scrapebench.FieldPostingUserURL, "/u/bob"),
	}

	assert.Equal(t, []scrapebench.Field{scrapebench.FieldTitle, scrapebench.FieldPostingUserURL}, result.Fields())
	assert.Equal(t, []string{"sample", "/u/bob"}, result.Strings())
}
