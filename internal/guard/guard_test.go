package guard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore implements Store with scriptable behavior.
type fakeStore struct {
	changed  []string
	saveErr  error
	saves    int
	discards int
}

func (f *fakeStore) ChangedSections() []string { return f.changed }

func (f *fakeStore) Save() error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.changed = nil
	return nil
}

func (f *fakeStore) Discard() {
	f.discards++
	f.changed = nil
}

// recorder captures performed transitions.
type recorder struct {
	destinations []string
	err          error
}

func (r *recorder) navigate(dest string) error {
	if r.err != nil {
		return r.err
	}
	r.destinations = append(r.destinations, dest)
	return nil
}

func TestRequestTransition_NoChangesNavigatesImmediately(t *testing.T) {
	store := &fakeStore{}
	nav := &recorder{}
	g := New(store, nav.navigate)

	changed, err := g.RequestTransition("education")
	require.NoError(t, err)
	assert.Empty(t, changed)
	assert.Equal(t, Idle, g.State())
	assert.Equal(t, []string{"education"}, nav.destinations)
}

func TestRequestTransition_WithChangesSuspends(t *testing.T) {
	store := &fakeStore{changed: []string{"Personal Information"}}
	nav := &recorder{}
	g := New(store, nav.navigate)

	changed, err := g.RequestTransition("education")
	require.NoError(t, err)
	assert.Equal(t, []string{"Personal Information"}, changed)
	assert.Equal(t, PendingConfirmation, g.State())
	assert.Equal(t, "education", g.PendingDestination())
	assert.Empty(t, nav.destinations, "transition must be suspended")
}

func TestConfirmSave_SavesThenNavigates(t *testing.T) {
	store := &fakeStore{changed: []string{"Skills"}}
	nav := &recorder{}
	g := New(store, nav.navigate)

	_, err := g.RequestTransition("projects")
	require.NoError(t, err)

	require.NoError(t, g.ConfirmSave())
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, []string{"projects"}, nav.destinations)
	assert.Equal(t, Idle, g.State())
	assert.Empty(t, g.PendingDestination())
}

func TestConfirmSave_FailureStaysPending(t *testing.T) {
	saveErr := errors.New("disk full")
	store := &fakeStore{changed: []string{"Skills"}, saveErr: saveErr}
	nav := &recorder{}
	g := New(store, nav.navigate)

	_, err := g.RequestTransition("projects")
	require.NoError(t, err)

	err = g.ConfirmSave()
	require.ErrorIs(t, err, saveErr)
	assert.Equal(t, PendingConfirmation, g.State())
	assert.Equal(t, "projects", g.PendingDestination())
	assert.Empty(t, nav.destinations)

	// Retry succeeds once the store recovers.
	store.saveErr = nil
	require.NoError(t, g.ConfirmSave())
	assert.Equal(t, []string{"projects"}, nav.destinations)
	assert.Equal(t, Idle, g.State())
}

func TestConfirmDiscard_RevertsThenNavigates(t *testing.T) {
	store := &fakeStore{changed: []string{"Personal Information"}}
	nav := &recorder{}
	g := New(store, nav.navigate)

	changed, err := g.RequestTransition("education")
	require.NoError(t, err)
	assert.Equal(t, []string{"Personal Information"}, changed)
	assert.Equal(t, PendingConfirmation, g.State())

	require.NoError(t, g.ConfirmDiscard())
	assert.Equal(t, 1, store.discards)
	assert.Equal(t, []string{"education"}, nav.destinations)
	assert.Equal(t, Idle, g.State())
}

func TestCancel_ClearsPendingWithoutNavigating(t *testing.T) {
	store := &fakeStore{changed: []string{"Skills"}}
	nav := &recorder{}
	g := New(store, nav.navigate)

	_, err := g.RequestTransition("projects")
	require.NoError(t, err)

	require.NoError(t, g.Cancel())
	assert.Equal(t, Idle, g.State())
	assert.Empty(t, g.PendingDestination())
	assert.Empty(t, nav.destinations)
	assert.Equal(t, 0, store.saves)
	assert.Equal(t, 0, store.discards)
}

func TestConfirmAndCancel_InvalidFromIdle(t *testing.T) {
	g := New(&fakeStore{}, (&recorder{}).navigate)

	var serr *StateError
	require.ErrorAs(t, g.ConfirmSave(), &serr)
	assert.Equal(t, "ConfirmSave", serr.Op)
	require.ErrorAs(t, g.ConfirmDiscard(), &serr)
	require.ErrorAs(t, g.Cancel(), &serr)
	assert.Equal(t, Idle, g.State())
}

func TestRequestTransition_ReplacesPendingDestination(t *testing.T) {
	store := &fakeStore{changed: []string{"Skills"}}
	nav := &recorder{}
	g := New(store, nav.navigate)

	_, err := g.RequestTransition("projects")
	require.NoError(t, err)
	_, err = g.RequestTransition("education")
	require.NoError(t, err)
	assert.Equal(t, "education", g.PendingDestination())

	require.NoError(t, g.ConfirmDiscard())
	assert.Equal(t, []string{"education"}, nav.destinations)
}

func TestRequestTransition_NavigateErrorPropagates(t *testing.T) {
	navErr := errors.New("session write failed")
	g := New(&fakeStore{}, (&recorder{err: navErr}).navigate)

	_, err := g.RequestTransition("projects")
	assert.ErrorIs(t, err, navErr)
	assert.Equal(t, Idle, g.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "PendingConfirmation", PendingConfirmation.String())
}
