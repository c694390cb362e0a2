package hitl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name     string
		gathered map[string]any
		want     int
	}{
		{
			name:     "empty map is zero",
			gathered: map[string]any{},
			want:     0,
		},
		{
			name: "single category fully filled",
			gathered: map[string]any{
				"project_type": map[string]any{"project_type": "web_app"},
			},
			want: 20,
		},
		{
			name: "partially filled category scales by required fields",
			gathered: map[string]any{
				// 1 of 3 tech_stack fields: 25/3 = 8 (integer division)
				"tech_stack": map[string]any{"frontend": "react"},
			},
			want: 8,
		},
		{
			name: "empty strings do not count as filled",
			gathered: map[string]any{
				"project_type": map[string]any{"project_type": ""},
			},
			want: 0,
		},
		{
			name: "empty lists do not count as filled",
			gathered: map[string]any{
				"features": map[string]any{
					"core_features": []any{},
					"user_roles":    []any{"admin"},
				},
			},
			want: 12,
		},
		{
			name: "everything filled is 100",
			gathered: map[string]any{
				"project_type": map[string]any{"project_type": "web_app"},
				"tech_stack": map[string]any{
					"frontend": "react", "backend": "go", "database": "postgres",
				},
				"scale": map[string]any{
					"expected_users": "10k", "performance": "sub-second",
				},
				"features": map[string]any{
					"core_features": []any{"catalog", "cart"},
					"user_roles":    []any{"admin", "customer"},
				},
				"constraints": map[string]any{
					"timeline": "3 months", "integrations": []any{"stripe"},
				},
			},
			want: 100,
		},
		{
			name: "unknown keys are ignored",
			gathered: map[string]any{
				"budget":       map[string]any{"amount": "unlimited"},
				"project_type": map[string]any{"project_type": "mcp_server"},
			},
			want: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeProgress(tt.gathered))
		})
	}
}

func TestNextCategory(t *testing.T) {
	assert.Equal(t, "project_type", nextCategory(map[string]any{}))

	gathered := map[string]any{
		"project_type": map[string]any{"project_type": "web_app"},
	}
	assert.Equal(t, "tech_stack", nextCategory(gathered))

	full := map[string]any{
		"project_type": map[string]any{"project_type": "web_app"},
		"tech_stack":   map[string]any{"frontend": "react", "backend": "go", "database": "postgres"},
		"scale":        map[string]any{"expected_users": "10k", "performance": "fast"},
		"features":     map[string]any{"core_features": []any{"x"}, "user_roles": []any{"y"}},
		"constraints":  map[string]any{"timeline": "q3", "integrations": "none"},
	}
	assert.Equal(t, "", nextCategory(full))
}
