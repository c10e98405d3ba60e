package service

import "newsletter_sync/internal/domain"

// Matcher decides whether an email is the sent form of a broadcast.
// The provider exposes no shared key between the two collections, so
// matching is by content equality.
type Matcher func(domain.Broadcast, domain.Email) bool

// SubjectFromMatch matches on exact (subject, from) equality.
func SubjectFromMatch(b domain.Broadcast, e domain.Email) bool {
	return b.Subject == e.Subject && b.From == e.From
}

// FirstMatch scans the email collection in order and returns the first
// email the matcher accepts, or nil. When several emails share the same
// (subject, from) the first one wins; broadcasts colliding on the tuple
// all resolve to that same email.
func FirstMatch(broadcast domain.Broadcast, emails []domain.Email, match Matcher) *domain.Email {
	for i := range emails {
		if match(broadcast, emails[i]) {
			return &emails[i]
		}
	}
	return nil
}
