// Package seed bootstraps the directory collections from an optional
// YAML file on first start. Seeding uses Ensure semantics: a document
// that already exists on disk is never overwritten.
package seed

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/resfinder/resfinder/internal/directory"
	"github.com/resfinder/resfinder/internal/store"
)

// File is the seed file shape:
//
//	admins:
//	  - ops@example.edu
//	users:
//	  - student@example.edu
//	subscribers: []
type File struct {
	Admins      []string `yaml:"admins"`
	Users       []string `yaml:"users"`
	Subscribers []string `yaml:"subscribers"`
}

// Load reads and parses a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}
	return &f, nil
}

// Apply ensures the seeded collections exist. Entries are normalized
// and deduplicated; admins are folded into the user seed, mirroring
// the admin-implies-user invariant.
func (f *File) Apply(docs store.Documents) error {
	users := clean(append(append([]string{}, f.Users...), f.Admins...))

	for key, list := range map[string][]string{
		directory.AdminsDoc:      clean(f.Admins),
		directory.UsersDoc:       users,
		directory.SubscribersDoc: clean(f.Subscribers),
	} {
		if len(list) == 0 {
			continue
		}
		if err := docs.Ensure(key, list); err != nil {
			return fmt.Errorf("failed to seed %q: %w", key, err)
		}
	}
	return nil
}

func clean(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		email := directory.NormalizeEmail(e)
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true
		out = append(out, email)
	}
	sort.Strings(out)
	return out
}
