// Package localization provides the translated labels of the board: complaint
// status names and API messages. Translations are plain JSON files named by
// language code (e.g. "en.json") living next to this package.
package localization

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aslnygz/ygz/internal/models"
)

// DefaultLang is the fallback language for unknown codes and missing keys.
const DefaultLang = "en"

// Localizer holds the loaded translation tables keyed by language.
type Localizer struct {
	translations map[string]map[string]string
	mu           sync.RWMutex
}

// NewLocalizer loads every *.json file in path as one language table.
func NewLocalizer(path string) (*Localizer, error) {
	l := &Localizer{
		translations: make(map[string]map[string]string),
	}

	files, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read localization directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		lang := strings.TrimSuffix(file.Name(), ".json")
		data, err := os.ReadFile(filepath.Join(path, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read localization file %s: %w", file.Name(), err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse localization file %s: %w", file.Name(), err)
		}

		l.translations[lang] = translations
	}

	return l, nil
}

// GetString returns the translation of key for lang, falling back to the
// default language and finally to the key itself.
func (l *Localizer) GetString(lang, key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if table, ok := l.translations[lang]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if lang != DefaultLang {
		if table, ok := l.translations[DefaultLang]; ok {
			if value, ok := table[key]; ok {
				return value
			}
		}
	}
	return key
}

// StatusLabel returns the display label of a complaint status.
func (l *Localizer) StatusLabel(lang string, status models.Status) string {
	return l.GetString(lang, "status."+strings.ToLower(string(status)))
}
