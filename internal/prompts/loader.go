// Package prompts holds the generation prompt templates. Each embedded JSON
// file maps a template key to its text.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var templateFS embed.FS

var (
	loadedMu sync.RWMutex
	loaded   = make(map[string]map[string]string)
)

// Get returns the template stored under key in the named file, e.g. "style.json".
func Get(file, key string) (string, error) {
	templates, err := templatesIn(file)
	if err != nil {
		return "", err
	}
	text, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, file)
	}
	return text, nil
}

// MustGet is Get for templates the binary cannot run without.
func MustGet(file, key string) string {
	text, err := Get(file, key)
	if err != nil {
		panic(fmt.Sprintf("prompts: %v", err))
	}
	return text
}

// Format substitutes each {{.Name}} in template with data["Name"].
// Names missing from data stay in the output untouched.
func Format(template string, data map[string]string) string {
	pairs := make([]string, 0, 2*len(data))
	for name, value := range data {
		pairs = append(pairs, "{{."+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func templatesIn(file string) (map[string]string, error) {
	loadedMu.RLock()
	templates, ok := loaded[file]
	loadedMu.RUnlock()
	if ok {
		return templates, nil
	}

	raw, err := templateFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", file, err)
	}
	if err := json.Unmarshal(raw, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", file, err)
	}

	loadedMu.Lock()
	loaded[file] = templates
	loadedMu.Unlock()
	return templates, nil
}
