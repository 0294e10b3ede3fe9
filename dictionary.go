package localekit

// Dictionary holds the translation payload for a single locale. Values are
// strings or nested maps of further entries; the structure is opaque to this
// package and handed to the host application as-is.
type Dictionary map[string]any

// Clone returns a deep copy of the dictionary. Nested maps and slices are
// copied recursively, so mutations on the copy never reach the original.
func (d Dictionary) Clone() Dictionary {
	if d == nil {
		return Dictionary{}
	}
	out := make(Dictionary, len(d))
	for key, value := range d {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case Dictionary:
		return v.Clone()
	case map[string]any:
		return Dictionary(v).Clone()
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = cloneValue(item)
		}
		return items
	default:
		return value
	}
}

// asDictionary reports whether a value is a nested dictionary, unifying the
// Dictionary type and the raw map shape produced by JSON and YAML decoding.
func asDictionary(value any) (Dictionary, bool) {
	switch v := value.(type) {
	case Dictionary:
		return v, true
	case map[string]any:
		return Dictionary(v), true
	default:
		return nil, false
	}
}

// mergeDictionary overlays src onto dst in place. Nested maps merge
// recursively, any other value in src replaces the one in dst, and keys
// present only in dst survive. dst must be a private copy; src is never
// modified.
func mergeDictionary(dst, src Dictionary) {
	for key, value := range src {
		overlay, ok := asDictionary(value)
		if !ok {
			dst[key] = cloneValue(value)
			continue
		}
		base, ok := asDictionary(dst[key])
		if !ok {
			dst[key] = overlay.Clone()
			continue
		}
		mergeDictionary(base, overlay)
		dst[key] = base
	}
}
