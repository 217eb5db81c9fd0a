package directory

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/resfinder/resfinder/internal/apperr"
	"github.com/resfinder/resfinder/internal/store"
)

// Resource describes one bookable/physical resource. Ids are decimal
// strings assigned by the catalog, compared as raw strings everywhere.
type Resource struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Building      string    `json:"building"`
	Room          string    `json:"room"`
	Notes         string    `json:"notes"`
	Hours         WeekHours `json:"hours"`
	Accessibility string    `json:"accessibility,omitempty"`
}

// NewResource is the input to Create. Hours arrives as raw JSON so the
// normalization pass sees exactly what the client sent.
type NewResource struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Building      string          `json:"building"`
	Room          string          `json:"room"`
	Notes         string          `json:"notes"`
	Hours         json.RawMessage `json:"hours"`
	Accessibility string          `json:"accessibility"`
}

// ResourcePatch is a partial update: nil pointers mean "leave alone".
// Hours, when present, always rewrites the full week. Accessibility set
// to an empty string removes the field.
type ResourcePatch struct {
	Name          *string         `json:"name"`
	Type          *string         `json:"type"`
	Building      *string         `json:"building"`
	Room          *string         `json:"room"`
	Notes         *string         `json:"notes"`
	Hours         json.RawMessage `json:"hours"`
	Accessibility *string         `json:"accessibility"`
}

// Catalog is the resource collection backed by one JSON document. All
// mutating operations are gated on admin membership and persist the
// whole catalog in insertion order.
type Catalog struct {
	mu   sync.Mutex
	docs store.Documents
	key  string
	gate *Gate
}

func NewCatalog(docs store.Documents, key string, gate *Gate) *Catalog {
	return &Catalog{docs: docs, key: key, gate: gate}
}

// List returns the stored catalog. Non-list storage degrades to empty;
// items that do not parse as resource records are dropped.
func (c *Catalog) List() ([]Resource, error) {
	return c.load()
}

// Create validates, normalizes, assigns the next id, and appends a new
// record. The caller must pass the admin gate.
func (c *Catalog) Create(in NewResource, caller string) (*Resource, error) {
	if err := c.authorize(caller); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	rtype := strings.ToLower(strings.TrimSpace(in.Type))
	building := strings.TrimSpace(in.Building)
	if name == "" || rtype == "" || building == "" {
		return nil, apperr.Invalid("name, type, building are required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return nil, err
	}

	rec := Resource{
		ID:            nextID(items),
		Name:          name,
		Type:          rtype,
		Building:      building,
		Room:          strings.TrimSpace(in.Room),
		Notes:         in.Notes,
		Hours:         NormalizeHours(in.Hours),
		Accessibility: strings.TrimSpace(in.Accessibility),
	}

	items = append(items, rec)
	if err := c.docs.Save(c.key, items); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update applies a partial patch to the record whose id string-equals
// id and persists the catalog. Unknown ids fail with NotFound before
// anything is written.
func (c *Catalog) Update(id string, patch ResourcePatch, caller string) (*Resource, error) {
	if err := c.authorize(caller); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperr.NotFound("Not found")
	}

	rec := items[idx]
	if patch.Name != nil {
		rec.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Type != nil {
		rec.Type = strings.TrimSpace(*patch.Type)
	}
	if patch.Building != nil {
		rec.Building = strings.TrimSpace(*patch.Building)
	}
	if patch.Room != nil {
		rec.Room = strings.TrimSpace(*patch.Room)
	}
	if patch.Notes != nil {
		rec.Notes = strings.TrimSpace(*patch.Notes)
	}
	if len(patch.Hours) > 0 {
		// Partial per-day patches are not supported: supplying hours
		// always rewrites all seven days.
		rec.Hours = NormalizeHours(patch.Hours)
	}
	if patch.Accessibility != nil {
		// Empty string clears the field (omitted from JSON entirely).
		rec.Accessibility = strings.TrimSpace(*patch.Accessibility)
	}

	items[idx] = rec
	if err := c.docs.Save(c.key, items); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes the record whose id string-equals id.
func (c *Catalog) Delete(id string, caller string) error {
	if err := c.authorize(caller); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}

	kept := make([]Resource, 0, len(items))
	for _, r := range items {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(items) {
		return apperr.NotFound("Not found")
	}
	return c.docs.Save(c.key, kept)
}

func (c *Catalog) authorize(caller string) error {
	ok, err := c.gate.IsAdmin(caller)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Forbidden()
	}
	return nil
}

func (c *Catalog) load() ([]Resource, error) {
	var raw []json.RawMessage
	if err := c.docs.Load(c.key, &raw); err != nil {
		return nil, err
	}
	items := make([]Resource, 0, len(raw))
	for _, item := range raw {
		var r Resource
		if err := json.Unmarshal(item, &r); err != nil {
			continue
		}
		items = append(items, r)
	}
	return items, nil
}

// nextID derives a fresh id from the max numeric id seen, not from the
// record count, so deleted ids are never reused.
func nextID(items []Resource) string {
	maxID := 0
	for _, r := range items {
		n, err := strconv.Atoi(strings.TrimSpace(r.ID))
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}
