// Package store persists named JSON documents. Every collection in the
// directory (users, admins, subscribers, resources) lives in its own
// document; there is no caching, so a Load always reflects the latest
// durable state.
package store

// Documents is the document store contract threaded through the
// directory core. Implementations must make Save atomic from a
// reader's point of view: a concurrent Load sees either the old or
// the new document, never a partial write.
type Documents interface {
	// Load decodes the document at key into out. A missing, empty, or
	// unparseable document leaves out untouched and returns nil, so the
	// caller's pre-initialized value acts as the default.
	Load(key string, out any) error

	// Save serializes v and replaces the document at key.
	Save(key string, v any) error

	// Ensure creates the document holding def if none exists at key.
	Ensure(key string, def any) error
}
