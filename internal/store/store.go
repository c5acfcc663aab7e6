package store

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/portfolio-builder/internal/diff"
	"github.com/jonathan/portfolio-builder/internal/schemas"
	"github.com/jonathan/portfolio-builder/internal/types"
	"github.com/jonathan/portfolio-builder/internal/validation"
)

func profileKey(userID string) string   { return "profile/" + userID + ".json" }
func portfolioKey(userID string) string { return "portfolio/" + userID + ".json" }
func sessionKey(userID string) string   { return "session/" + userID + ".json" }
func draftKey(userID string) string     { return "draft/" + userID + ".json" }

// Session records per-user UI state that survives across invocations.
type Session struct {
	ActiveSection string `json:"activeSection"`
}

// ProfileStore is the single source of truth for one user's profile. It holds
// the working snapshot (edited in place) and the original snapshot (the last
// persisted state, used as the diff baseline and discard target). One store
// instance owns the pair exclusively; there are no concurrent writers.
type ProfileStore struct {
	userID   string
	kv       KV
	log      *zap.Logger
	working  *types.Profile
	original *types.Profile
}

// Open loads the persisted profile for userID, or starts an empty one with a
// fresh ID when nothing is stored yet. A nil logger disables logging.
func Open(kv KV, userID string, log *zap.Logger) (*ProfileStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	key := profileKey(userID)
	data, found, err := kv.Get(key)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Key: key, Cause: err}
	}

	var original *types.Profile
	if found {
		var p types.Profile
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, &PersistenceError{Op: "decode", Key: key, Cause: err}
		}
		original = &p
		log.Debug("loaded stored profile", zap.String("user", userID), zap.String("profile", p.ID))
	} else {
		original = &types.Profile{
			ID:       uuid.NewString(),
			Template: types.DefaultTemplate,
		}
		log.Debug("starting empty profile", zap.String("user", userID), zap.String("profile", original.ID))
	}

	working := original.Clone()
	draft, draftFound, err := kv.Get(draftKey(userID))
	if err != nil {
		log.Warn("failed to read draft", zap.String("user", userID), zap.Error(err))
	} else if draftFound {
		var p types.Profile
		if err := json.Unmarshal(draft, &p); err == nil {
			working = &p
			log.Debug("resumed draft", zap.String("user", userID))
		} else {
			log.Warn("ignoring unreadable draft", zap.String("user", userID), zap.Error(err))
		}
	}

	return &ProfileStore{
		userID:   userID,
		kv:       kv,
		log:      log,
		working:  working,
		original: original,
	}, nil
}

// FlushDraft persists the working snapshot as a draft document so an editing
// session survives across invocations. Drafts are a shell-level convenience;
// Apply itself never performs I/O.
func (s *ProfileStore) FlushDraft() error {
	doc, err := json.MarshalIndent(s.working, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode", Key: draftKey(s.userID), Cause: err}
	}
	if err := s.kv.Put(draftKey(s.userID), doc); err != nil {
		return &PersistenceError{Op: "write", Key: draftKey(s.userID), Cause: err}
	}
	return nil
}

// DropDraft removes the persisted draft, if any.
func (s *ProfileStore) DropDraft() error {
	if err := s.kv.Delete(draftKey(s.userID)); err != nil {
		return &PersistenceError{Op: "delete", Key: draftKey(s.userID), Cause: err}
	}
	return nil
}

// Working returns a deep copy of the working snapshot. Edits must go through
// Apply; the copy keeps callers from bypassing it.
func (s *ProfileStore) Working() *types.Profile {
	return s.working.Clone()
}

// Apply runs one mutation against the working snapshot. On error the snapshot
// is untouched. Apply never performs I/O.
func (s *ProfileStore) Apply(m Mutation) error {
	return m.apply(s.working)
}

// ChangedSections reports the sections where the working snapshot differs
// from the original, in fixed section order.
func (s *ProfileStore) ChangedSections() []string {
	return diff.ChangedSections(s.working, s.original)
}

// HasChanges reports whether any section has unsaved changes.
func (s *ProfileStore) HasChanges() bool {
	return len(diff.ChangedSections(s.working, s.original)) > 0
}

// Validate runs the full validation rule set against the working snapshot.
// Partial profiles are expected; validation never blocks editing or saving.
func (s *ProfileStore) Validate() validation.Result {
	return validation.ValidateProfile(s.working)
}

// IsComplete reports the derived profile-level completeness of the working
// snapshot.
func (s *ProfileStore) IsComplete() bool {
	return s.working.Complete()
}

// Project derives the read-only display projection from the working snapshot.
// The result is a value copy; renderers cannot mutate the profile through it.
func (s *ProfileStore) Project() *types.Portfolio {
	return types.NewPortfolio(s.working)
}

// Save persists the working snapshot and the derived display projection, then
// replaces the original snapshot with a clone of working. Partial profiles
// save fine; completeness is not required. On any failure the original is
// left untouched so the unsaved-changes state survives for a retry.
func (s *ProfileStore) Save() error {
	profileDoc, err := json.MarshalIndent(s.working, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode", Key: profileKey(s.userID), Cause: err}
	}
	portfolioDoc, err := json.MarshalIndent(s.Project(), "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode", Key: portfolioKey(s.userID), Cause: err}
	}

	// Schema validation is advisory here: a profile that drifts from the
	// published schema is logged, not blocked.
	if schemaPath := schemas.ResolveSchemaPath("schemas/profile.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, profileDoc); err != nil {
			s.log.Warn("stored profile does not validate against schema", zap.Error(err))
		}
	}

	var g errgroup.Group
	g.Go(func() error {
		if err := s.kv.Put(profileKey(s.userID), profileDoc); err != nil {
			return &PersistenceError{Op: "write", Key: profileKey(s.userID), Cause: err}
		}
		return nil
	})
	g.Go(func() error {
		if err := s.kv.Put(portfolioKey(s.userID), portfolioDoc); err != nil {
			return &PersistenceError{Op: "write", Key: portfolioKey(s.userID), Cause: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Only now is the baseline advanced: both writes are confirmed durable.
	s.original = s.working.Clone()
	if err := s.kv.Delete(draftKey(s.userID)); err != nil {
		s.log.Warn("failed to drop draft after save", zap.Error(err))
	}
	s.log.Info("profile saved",
		zap.String("user", s.userID),
		zap.String("profile", s.working.ID))
	return nil
}

// Discard resets the working snapshot to the original. Calling it with no
// unsaved changes is a no-op; repeated calls are idempotent.
func (s *ProfileStore) Discard() {
	s.working = s.original.Clone()
}

// Persisted reports whether a profile document exists in the store for this
// user. Open defaults to an empty profile either way; Persisted tells the two
// cases apart.
func (s *ProfileStore) Persisted() (bool, error) {
	_, found, err := s.kv.Get(profileKey(s.userID))
	if err != nil {
		return false, &PersistenceError{Op: "load", Key: profileKey(s.userID), Cause: err}
	}
	return found, nil
}

// Reset replaces both snapshots with a fresh empty profile under a new ID and
// persists it immediately. Any unsaved changes and any draft are lost.
func (s *ProfileStore) Reset(template string) error {
	if template == "" {
		template = types.DefaultTemplate
	}
	s.working = &types.Profile{
		ID:       uuid.NewString(),
		Template: template,
	}
	return s.Save()
}

// ActiveSection returns the persisted session's active section, or "" when no
// session exists yet.
func (s *ProfileStore) ActiveSection() (string, error) {
	data, found, err := s.kv.Get(sessionKey(s.userID))
	if err != nil {
		return "", &PersistenceError{Op: "load", Key: sessionKey(s.userID), Cause: err}
	}
	if !found {
		return "", nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return "", &PersistenceError{Op: "decode", Key: sessionKey(s.userID), Cause: err}
	}
	return sess.ActiveSection, nil
}

// SetActiveSection persists the session's active section.
func (s *ProfileStore) SetActiveSection(section string) error {
	doc, err := json.MarshalIndent(Session{ActiveSection: section}, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode", Key: sessionKey(s.userID), Cause: err}
	}
	if err := s.kv.Put(sessionKey(s.userID), doc); err != nil {
		return &PersistenceError{Op: "write", Key: sessionKey(s.userID), Cause: err}
	}
	return nil
}
