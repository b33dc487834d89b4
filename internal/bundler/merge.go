package bundler

// MergeOptions deep-merges override onto base and returns a fresh map; neither
// input is modified.
//   - Maps: merged recursively
//   - Slices: concatenated (base first)
//   - Scalars: replaced
func MergeOptions(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = cloneValue(v)
	}
	for k, v := range override {
		out[k] = mergeValue(out[k], v)
	}
	return out
}

func mergeValue(dst, src any) any {
	switch sv := src.(type) {
	case map[string]any:
		if dm, ok := dst.(map[string]any); ok {
			return MergeOptions(dm, sv)
		}
		return MergeOptions(nil, sv)
	case []any:
		if ds, ok := dst.([]any); ok {
			merged := make([]any, 0, len(ds)+len(sv))
			merged = append(merged, ds...)
			for _, v := range sv {
				merged = append(merged, cloneValue(v))
			}
			return merged
		}
		return cloneValue(sv)
	default:
		return src
	}
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return MergeOptions(nil, tv)
	case []any:
		cp := make([]any, len(tv))
		for i, e := range tv {
			cp[i] = cloneValue(e)
		}
		return cp
	default:
		return v
	}
}
