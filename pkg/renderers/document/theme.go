package document

import (
	"sort"
	"strings"
)

type cssVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// cssVars turns theme tokens into custom properties ("font-size" becomes
// "--font-size"). Tokens whose name or value could escape the declaration are
// dropped. When "name" and "--name" are both present the prefixed key wins.
func cssVars(tokens map[string]string) []cssVar {
	if len(tokens) == 0 {
		return nil
	}

	type entry struct {
		value    string
		prefixed bool
	}
	byName := make(map[string]entry, len(tokens))
	for key, value := range tokens {
		key = strings.TrimSpace(key)
		name := strings.TrimPrefix(key, "--")
		value = strings.TrimSpace(value)
		if !validVarName(name) || !validVarValue(value) {
			continue
		}
		prefixed := name != key
		if current, ok := byName[name]; ok && current.prefixed && !prefixed {
			continue
		}
		byName[name] = entry{value: value, prefixed: prefixed}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make([]cssVar, 0, len(names))
	for _, name := range names {
		vars = append(vars, cssVar{Name: "--" + name, Value: byName[name].value})
	}
	return vars
}

func validVarName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

func validVarValue(value string) bool {
	return value != "" && !strings.ContainsAny(value, ";{}<>\\\n\r")
}
