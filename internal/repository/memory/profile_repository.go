package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"internscout/internal/domain/profile"
	"internscout/internal/repository"
)

// ProfileRepository is a mutex-guarded in-memory store. The demo keeps all
// profiles in process; the interface is what the rest of the system depends
// on, so a database-backed implementation can replace this one.
type ProfileRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]profile.Profile
	byEmail map[string]uuid.UUID
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		byID:    make(map[uuid.UUID]profile.Profile),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *ProfileRepository) Create(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := normalizeEmail(p.Email)
	if _, ok := r.byEmail[email]; ok {
		return repository.ErrProfileExists
	}
	r.byID[p.ID] = cloneProfile(p)
	r.byEmail[email] = p.ID
	return nil
}

func (r *ProfileRepository) GetByID(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return profile.Profile{}, repository.ErrProfileNotFound
	}
	return cloneProfile(p), nil
}

func (r *ProfileRepository) GetByEmail(_ context.Context, email string) (profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return profile.Profile{}, repository.ErrProfileNotFound
	}
	return cloneProfile(r.byID[id]), nil
}

func (r *ProfileRepository) Update(_ context.Context, p profile.Profile) (profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byID[p.ID]
	if !ok {
		return profile.Profile{}, repository.ErrProfileNotFound
	}

	if normalizeEmail(prev.Email) != normalizeEmail(p.Email) {
		delete(r.byEmail, normalizeEmail(prev.Email))
		r.byEmail[normalizeEmail(p.Email)] = p.ID
	}

	r.byID[p.ID] = cloneProfile(p)
	return cloneProfile(p), nil
}

func (r *ProfileRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[normalizeEmail(email)]
	return ok, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// cloneProfile copies the slices so callers cannot mutate stored state
// through a returned profile.
func cloneProfile(p profile.Profile) profile.Profile {
	out := p
	out.Skills = append([]string(nil), p.Skills...)
	out.Preferences.Roles = append([]string(nil), p.Preferences.Roles...)
	out.Preferences.Locations = append([]string(nil), p.Preferences.Locations...)
	out.Preferences.Types = append([]string(nil), p.Preferences.Types...)
	return out
}
