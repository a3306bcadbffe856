package locale_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunlex/delais/internal/config"
)

// TestLocaleIntegrity ensures that every translation key defined in config.go
// exists in every locale JSON file, so no language silently falls back to
// raw keys at runtime.
func TestLocaleIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyEcheance,
		config.TKeyDepart,
		config.TKeyModeLabel,
		config.TKeyRestant,
		config.TKeyUrgence,
		config.TKeyRappels,
		config.TKeyRappelPasse,
		config.TKeyUrgNormal,
		config.TKeyUrgProche,
		config.TKeyUrgUrgent,
		config.TKeyUrgCritique,
		config.TKeyUrgDepasse,
		config.TKeyEvtSummary,
		config.TKeyEvtReminder,
		config.TKeyFeedServing,
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			path := filepath.Join("locales", "active."+lang+".json")
			content, err := os.ReadFile(path)
			require.NoErrorf(t, err, "must load %s", path)

			var jsonMap map[string]interface{}
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for _, key := range keysToCheck {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key %q defined in config.go is missing in %s", key, path)
			}

			// Orphan keys are not fatal, but worth surfacing.
			checked := make(map[string]bool, len(keysToCheck))
			for _, k := range keysToCheck {
				checked[k] = true
			}
			for jsonKey := range jsonMap {
				if !checked[jsonKey] {
					t.Logf("Warning: key %q exists in %s but is not declared in config.go", jsonKey, path)
				}
			}
		})
	}
}
