package directory

import "slices"

// Gate decides admin privilege from a caller-supplied identity. The
// identity is whatever the caller claims (an out-of-band header); real
// authentication has to happen in front of this service.
type Gate struct {
	admins *EmailSet
}

func NewGate(admins *EmailSet) *Gate {
	return &Gate{admins: admins}
}

// IsAdmin reports whether the normalized identity is a current member
// of the admin set. Stateless: every call re-reads durable state.
func (g *Gate) IsAdmin(identity string) (bool, error) {
	email := NormalizeEmail(identity)
	if email == "" {
		return false, nil
	}
	list, err := g.admins.List()
	if err != nil {
		return false, err
	}
	return slices.Contains(list, email), nil
}
