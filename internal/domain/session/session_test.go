package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenStore_RoundTrip(t *testing.T) {
	store := NewInMemoryTokenStore()

	_, ok := store.Get()
	assert.False(t, ok, "fresh store holds no token")

	store.Set("T-123")
	token, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "T-123", token)

	store.Set("T-456")
	token, _ = store.Get()
	assert.Equal(t, "T-456", token)

	store.Clear()
	_, ok = store.Get()
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleStudent, ParseRole("student"))
	assert.Equal(t, RoleTutor, ParseRole(" Tutor "))
	assert.Equal(t, RoleUnset, ParseRole("admin"))
	assert.Equal(t, RoleUnset, ParseRole(""))
}

func TestSession_SignInAndOut(t *testing.T) {
	sess := New(nil)
	assert.False(t, sess.SignedIn())

	assert.Error(t, sess.SignIn("42", RoleUnset), "unset role is rejected")

	require.NoError(t, sess.SignIn("42", RoleTutor))
	assert.True(t, sess.SignedIn())
	assert.Equal(t, "42", sess.UserID())

	sess.Tokens().Set("T")
	sess.SignOut()
	assert.False(t, sess.SignedIn())
	assert.Equal(t, "", sess.UserID())
	_, ok := sess.Tokens().Get()
	assert.False(t, ok, "logout clears the token store")
}

func TestRoute_IsPureFunctionOfSession(t *testing.T) {
	sess := New(nil)
	assert.Equal(t, ViewUnauthenticated, Route(sess).Kind)

	require.NoError(t, sess.SignIn("1", RoleStudent))
	assert.Equal(t, ViewStudent, Route(sess).Kind)

	sess.SignOut()
	require.NoError(t, sess.SignIn("2", RoleTutor))
	assert.Equal(t, ViewTutorListing, Route(sess).Kind, "tutors always land on the listing")

	sess.SignOut()
	assert.Equal(t, ViewUnauthenticated, Route(sess).Kind)
}

func TestTutorDetail_CarriesSelection(t *testing.T) {
	view := TutorDetail("12345678")
	assert.Equal(t, ViewTutorDetail, view.Kind)
	assert.Equal(t, "12345678", view.SelectedID)
}
