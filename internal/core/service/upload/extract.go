package upload

import "strings"

// ExtractByPath resolves a dot-separated path against a decoded JSON value
// and returns the string it points at. An empty path addresses the root value
// itself. Every intermediate step must be a JSON object and the final value
// must be a string, otherwise the second return is false. Array indexing is
// not supported.
func ExtractByPath(value any, path string) (string, bool) {
	current := value

	if path != "" {
		for _, segment := range strings.Split(path, ".") {
			obj, ok := current.(map[string]any)
			if !ok {
				return "", false
			}
			current, ok = obj[segment]
			if !ok {
				return "", false
			}
		}
	}

	result, ok := current.(string)
	if !ok {
		return "", false
	}
	return result, true
}
