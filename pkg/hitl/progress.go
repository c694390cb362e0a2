package hitl

// progressCategory is one weighted slice of the clarification progress
// composite. A category contributes (filled / total required) × weight.
type progressCategory struct {
	key      string
	weight   int
	required []string
}

var progressCategories = []progressCategory{
	{key: "project_type", weight: 20, required: []string{"project_type"}},
	{key: "tech_stack", weight: 25, required: []string{"frontend", "backend", "database"}},
	{key: "scale", weight: 15, required: []string{"expected_users", "performance"}},
	{key: "features", weight: 25, required: []string{"core_features", "user_roles"}},
	{key: "constraints", weight: 15, required: []string{"timeline", "integrations"}},
}

// readyThreshold is the composite progress required before ready_for_spec
// may take effect.
const readyThreshold = 80

// computeProgress returns the weighted completion percentage of the gathered
// clarification context.
func computeProgress(gathered map[string]any) int {
	if len(gathered) == 0 {
		return 0
	}
	total := 0
	for _, cat := range progressCategories {
		fields, _ := gathered[cat.key].(map[string]any)
		filled := 0
		for _, req := range cat.required {
			if isFilled(fields[req]) {
				filled++
			}
		}
		total += filled * cat.weight / len(cat.required)
	}
	if total > 100 {
		total = 100
	}
	return total
}

// isFilled reports whether a gathered leaf carries a usable value.
func isFilled(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

// nextCategory returns the first category with unfilled required fields, for
// steering the dialogue prompt. Empty when everything is gathered.
func nextCategory(gathered map[string]any) string {
	for _, cat := range progressCategories {
		fields, _ := gathered[cat.key].(map[string]any)
		for _, req := range cat.required {
			if !isFilled(fields[req]) {
				return cat.key
			}
		}
	}
	return ""
}
