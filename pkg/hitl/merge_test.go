package hitl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeGathered(t *testing.T) {
	t.Run("nil inputs produce empty map", func(t *testing.T) {
		out := mergeGathered(nil, nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("newer leaves win", func(t *testing.T) {
		old := map[string]any{"tech_stack": map[string]any{"backend": "python"}}
		newer := map[string]any{"tech_stack": map[string]any{"backend": "go"}}
		out := mergeGathered(old, newer)
		assert.Equal(t, "go", out["tech_stack"].(map[string]any)["backend"])
	})

	t.Run("nested objects merge instead of replacing", func(t *testing.T) {
		old := map[string]any{"tech_stack": map[string]any{"frontend": "react"}}
		newer := map[string]any{"tech_stack": map[string]any{"backend": "go"}}
		out := mergeGathered(old, newer)
		ts := out["tech_stack"].(map[string]any)
		assert.Equal(t, "react", ts["frontend"])
		assert.Equal(t, "go", ts["backend"])
	})

	t.Run("nil leaves preserve the older value", func(t *testing.T) {
		old := map[string]any{"scale": map[string]any{"expected_users": "10k"}}
		newer := map[string]any{"scale": map[string]any{"expected_users": nil}}
		out := mergeGathered(old, newer)
		assert.Equal(t, "10k", out["scale"].(map[string]any)["expected_users"])
	})

	t.Run("lists replace whole", func(t *testing.T) {
		old := map[string]any{"features": map[string]any{"core_features": []any{"a", "b"}}}
		newer := map[string]any{"features": map[string]any{"core_features": []any{"c"}}}
		out := mergeGathered(old, newer)
		assert.Equal(t, []any{"c"}, out["features"].(map[string]any)["core_features"])
	})

	t.Run("old fields survive untouched turns", func(t *testing.T) {
		old := map[string]any{
			"project_type": map[string]any{"project_type": "web_app"},
		}
		newer := map[string]any{
			"constraints": map[string]any{"timeline": "q3"},
		}
		out := mergeGathered(old, newer)
		assert.Equal(t, "web_app", out["project_type"].(map[string]any)["project_type"])
		assert.Equal(t, "q3", out["constraints"].(map[string]any)["timeline"])
	})

	t.Run("type change at a leaf is last writer wins", func(t *testing.T) {
		old := map[string]any{"scale": map[string]any{"expected_users": "unknown"}}
		newer := map[string]any{"scale": map[string]any{"expected_users": float64(50000)}}
		out := mergeGathered(old, newer)
		assert.Equal(t, float64(50000), out["scale"].(map[string]any)["expected_users"])
	})
}
