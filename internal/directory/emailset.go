package directory

import (
	"encoding/json"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/resfinder/resfinder/internal/apperr"
	"github.com/resfinder/resfinder/internal/store"
)

// Same shape the frontend validates against: at least one @, at least
// one dot after it, no whitespace anywhere.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lowercases a raw email string.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// EmailSet is a deduplicated collection of normalized email addresses
// backed by one JSON document. Users, admins, and update subscribers
// are each one EmailSet over a different document.
//
// The mutex only serializes writers within this process; concurrent
// processes still race with last-write-wins semantics.
type EmailSet struct {
	mu   sync.Mutex
	docs store.Documents
	key  string

	// allowObjects tolerates {"email": "...", ...} entries on read.
	// The frontend historically persisted users in that shape.
	allowObjects bool
}

func NewEmailSet(docs store.Documents, key string, allowObjects bool) *EmailSet {
	return &EmailSet{docs: docs, key: key, allowObjects: allowObjects}
}

// Key returns the backing document name.
func (s *EmailSet) Key() string { return s.key }

// List returns the current members, normalized and deduplicated, in
// encounter order. Malformed stored entries are dropped, not reported.
func (s *EmailSet) List() ([]string, error) {
	return s.load()
}

// Add inserts a normalized email. Malformed input fails with
// InvalidInput; an existing member is a no-op. The set persists sorted
// ascending. Returns the resulting member list sorted either way.
func (s *EmailSet) Add(raw string) ([]string, error) {
	email := NormalizeEmail(raw)
	if !emailRe.MatchString(email) {
		return nil, apperr.Invalid("Invalid email")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return nil, err
	}
	if slices.Contains(list, email) {
		sort.Strings(list)
		return list, nil
	}

	list = append(list, email)
	sort.Strings(list)
	if err := s.docs.Save(s.key, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Remove deletes a member if present. Removing an absent email is not
// an error; the (possibly unchanged) set is persisted sorted.
func (s *EmailSet) Remove(raw string) ([]string, error) {
	email := NormalizeEmail(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(list))
	for _, e := range list {
		if e != email {
			kept = append(kept, e)
		}
	}
	sort.Strings(kept)
	if err := s.docs.Save(s.key, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Contains reports membership of the normalized form of raw.
func (s *EmailSet) Contains(raw string) (bool, error) {
	list, err := s.load()
	if err != nil {
		return false, err
	}
	return slices.Contains(list, NormalizeEmail(raw)), nil
}

// load reads the backing document and coerces it into a clean slice:
// entries may be plain strings or (when allowObjects) objects carrying
// an "email" field; anything else is silently skipped.
func (s *EmailSet) load() ([]string, error) {
	var raw []json.RawMessage
	if err := s.docs.Load(s.key, &raw); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		var entry string
		if err := json.Unmarshal(item, &entry); err != nil {
			if !s.allowObjects {
				continue
			}
			var obj struct {
				Email string `json:"email"`
			}
			if err := json.Unmarshal(item, &obj); err != nil || obj.Email == "" {
				continue
			}
			entry = obj.Email
		}
		email := NormalizeEmail(entry)
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true
		out = append(out, email)
	}
	return out, nil
}
