package hitl

// mergeGathered deep-merges the newer turn's gathered context into the
// accumulated clarification map. Semantics: recursive object merge with
// last-writer-wins at leaves, list fields replaced whole by the newer turn,
// and nil-or-missing leaves preserving the older value. Fields once set are
// never silently discarded.
func mergeGathered(old, newer map[string]any) map[string]any {
	if old == nil && newer == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(old)+len(newer))
	for k, v := range old {
		out[k] = v
	}
	for k, v := range newer {
		if v == nil {
			continue
		}
		newMap, newIsMap := v.(map[string]any)
		oldMap, oldIsMap := out[k].(map[string]any)
		if newIsMap && oldIsMap {
			out[k] = mergeGathered(oldMap, newMap)
			continue
		}
		out[k] = v
	}
	return out
}
