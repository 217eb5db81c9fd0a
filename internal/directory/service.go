package directory

import (
	"github.com/resfinder/resfinder/internal/logger"
	"github.com/resfinder/resfinder/internal/store"
)

// Document names for the four persisted collections. Each is one flat
// JSON list; there is no cross-document transactionality.
const (
	UsersDoc       = "users"
	AdminsDoc      = "admins"
	SubscribersDoc = "subscribers"
	ResourcesDoc   = "resources"
)

// Service bundles the directory collections over one document store.
// It owns no in-memory state: every operation re-reads durable state,
// so two Service instances over the same store stay consistent (last
// write wins on conflicting writers).
type Service struct {
	Users       *EmailSet
	Admins      *EmailSet
	Subscribers *EmailSet
	Resources   *Catalog

	docs store.Documents
	gate *Gate
	log  logger.Logger
}

func NewService(docs store.Documents, log logger.Logger) *Service {
	users := NewEmailSet(docs, UsersDoc, true)
	admins := NewEmailSet(docs, AdminsDoc, false)
	subscribers := NewEmailSet(docs, SubscribersDoc, true)
	gate := NewGate(admins)

	return &Service{
		Users:       users,
		Admins:      admins,
		Subscribers: subscribers,
		Resources:   NewCatalog(docs, ResourcesDoc, gate),
		docs:        docs,
		gate:        gate,
		log:         log,
	}
}

// AddAdmin grows the admin set and cascades the email into the user
// set: an admin is always a user. The cascade is best-effort; a failed
// secondary add is logged, never rolled back.
func (s *Service) AddAdmin(raw string) ([]string, error) {
	list, err := s.Admins.Add(raw)
	if err != nil {
		return nil, err
	}
	if _, err := s.Users.Add(raw); err != nil {
		s.log.Warn("admin added but user cascade failed",
			logger.String("email", NormalizeEmail(raw)),
			logger.Error(err))
	}
	return list, nil
}

// IsAdmin exposes the authorization gate.
func (s *Service) IsAdmin(identity string) (bool, error) {
	return s.gate.IsAdmin(identity)
}

// EnsureDocuments creates any missing collection documents with empty
// lists, so first reads and the data dir exist before traffic arrives.
func (s *Service) EnsureDocuments() error {
	for _, key := range []string{UsersDoc, AdminsDoc, SubscribersDoc} {
		if err := s.docs.Ensure(key, []string{}); err != nil {
			return err
		}
	}
	return s.docs.Ensure(ResourcesDoc, []Resource{})
}
