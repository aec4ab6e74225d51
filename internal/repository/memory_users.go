package repository

import (
	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// User accessors for the self-contained auth backend. The backend keys
// users by email, mirroring an identity mapping rather than a table.

// GetUserByEmail returns the stored user for an email
func (s *MemoryStore) GetUserByEmail(email string) (*MemoryUser, bool) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return nil, false
	}
	return &MemoryUser{Profile: cloneProfile(u.Profile), PasswordHash: u.PasswordHash}, true
}

// PutUser stores a new user; returns false when the email is taken
func (s *MemoryStore) PutUser(user *MemoryUser) bool {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	if _, exists := s.users[user.Profile.Email]; exists {
		return false
	}
	s.users[user.Profile.Email] = &MemoryUser{
		Profile:      cloneProfile(user.Profile),
		PasswordHash: user.PasswordHash,
	}
	return true
}

// GetProfileByID scans users for a matching profile ID
func (s *MemoryStore) GetProfileByID(id string) (*domain.Profile, bool) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.Profile.ID == id {
			return cloneProfile(u.Profile), true
		}
	}
	return nil, false
}

// ReplaceProfile overwrites the stored profile with the same ID; returns
// false when no user matches
func (s *MemoryStore) ReplaceProfile(profile *domain.Profile) bool {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	for email, u := range s.users {
		if u.Profile.ID == profile.ID {
			s.users[email] = &MemoryUser{
				Profile:      cloneProfile(profile),
				PasswordHash: u.PasswordHash,
			}
			return true
		}
	}
	return false
}
