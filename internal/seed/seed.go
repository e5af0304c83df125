// Package seed loads fixture data into the entity store and provides
// helpers to create demo data. Fixtures ship embedded; a configured
// fixtures directory overrides them with JSON or YAML files per entity.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pulse/internal/store"
)

//go:embed fixtures/*.json
var defaultFixtures embed.FS

// Load seeds every collection of the store from fixture files. When dir is
// empty, or an entity file is missing from it, the embedded defaults are
// used for that entity.
func Load(st *store.Store, dir string) error {
	if err := loadEntity(dir, "users", st.Users); err != nil {
		return err
	}
	if err := loadEntity(dir, "posts", st.Posts); err != nil {
		return err
	}
	if err := loadEntity(dir, "comments", st.Comments); err != nil {
		return err
	}
	if err := loadEntity(dir, "follows", st.Follows); err != nil {
		return err
	}
	if err := loadEntity(dir, "conversations", st.Conversations); err != nil {
		return err
	}
	if err := loadEntity(dir, "messages", st.Messages); err != nil {
		return err
	}
	return loadEntity(dir, "notifications", st.Notifications)
}

func loadEntity[T store.Record[T]](dir, name string, coll *store.Collection[T]) error {
	data, ext, err := readFixture(dir, name)
	if err != nil {
		return fmt.Errorf("loading %s fixture: %w", name, err)
	}

	var items []T
	if err := decodeFixture(data, ext, &items); err != nil {
		return fmt.Errorf("decoding %s fixture: %w", name, err)
	}

	coll.Seed(items)
	return nil
}

// readFixture returns the fixture bytes and file extension for the entity,
// preferring the configured directory over the embedded defaults.
func readFixture(dir, name string) ([]byte, string, error) {
	if dir != "" {
		for _, ext := range []string{".json", ".yaml", ".yml"} {
			path := filepath.Join(dir, name+ext)
			data, err := os.ReadFile(path)
			if err == nil {
				return data, ext, nil
			}
			if !os.IsNotExist(err) {
				return nil, "", err
			}
		}
	}

	data, err := defaultFixtures.ReadFile("fixtures/" + name + ".json")
	return data, ".json", err
}

// decodeFixture unmarshals fixture bytes into out. YAML goes through a
// JSON round-trip so both formats share the models' json field names.
func decodeFixture(data []byte, ext string, out any) error {
	if ext == ".json" {
		return json.Unmarshal(data, out)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonData, out)
}

// Counts summarizes what was loaded, for startup logging.
func Counts(st *store.Store) map[string]int {
	return map[string]int{
		"users":         st.Users.Len(),
		"posts":         st.Posts.Len(),
		"comments":      st.Comments.Len(),
		"follows":       st.Follows.Len(),
		"conversations": st.Conversations.Len(),
		"messages":      st.Messages.Len(),
		"notifications": st.Notifications.Len(),
	}
}
