package service

import (
	"os"
	"testing"
	"time"

	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/apperr"
	"restaurant-forum-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.InitJWT("test-secret", time.Hour)
	os.Exit(m.Run())
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	return NewAuthService(store, store), store
}

func signUpUser(t *testing.T, auth *AuthService, email string) *models.User {
	t.Helper()
	user, err := auth.SignUp("tester", email, "password", "password")
	require.NoError(t, err)
	return user
}

func TestSignUpPasswordMismatch(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, err := auth.SignUp("tester", "a@example.com", "password", "different")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestSignUpDuplicateEmail(t *testing.T) {
	auth, _ := newAuthFixture(t)
	signUpUser(t, auth, "a@example.com")

	_, err := auth.SignUp("other", "a@example.com", "password", "password")
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestSignUpNeverStoresPlainPassword(t *testing.T) {
	auth, store := newAuthFixture(t)
	user := signUpUser(t, auth, "a@example.com")

	stored := store.users[user.ID]
	assert.NotEqual(t, "password", stored.PasswordHash)
	assert.True(t, utils.ComparePassword(stored.PasswordHash, "password"))
}

func TestSignInUnknownEmailAndWrongPasswordCollapse(t *testing.T) {
	auth, _ := newAuthFixture(t)
	signUpUser(t, auth, "a@example.com")

	_, _, errUnknown := auth.SignIn("nobody@example.com", "password")
	_, _, errWrong := auth.SignIn("a@example.com", "wrong")

	// Both failures must be indistinguishable to the caller.
	assert.True(t, apperr.Is(errUnknown, apperr.KindInvalidCredentials))
	assert.True(t, apperr.Is(errWrong, apperr.KindInvalidCredentials))
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestSignInIssuesAuthenticatableToken(t *testing.T) {
	auth, _ := newAuthFixture(t)
	user := signUpUser(t, auth, "a@example.com")

	token, signedIn, err := auth.SignIn("a@example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, user.ID, signedIn.ID)

	authed, err := auth.Authenticate("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestAuthenticateMalformedHeaders(t *testing.T) {
	auth, _ := newAuthFixture(t)
	signUpUser(t, auth, "a@example.com")
	token, _, err := auth.SignIn("a@example.com", "password")
	require.NoError(t, err)

	for _, header := range []string{
		"",
		token,
		"Token " + token,
		"Bearer",
		"Bearer " + token + " extra",
	} {
		_, err := auth.Authenticate(header)
		assert.True(t, apperr.Is(err, apperr.KindMalformedAuthHeader), "header %q", header)
	}

	// Scheme matching is case-insensitive.
	_, err = auth.Authenticate("bearer " + token)
	assert.NoError(t, err)
}

func TestAuthenticateInvalidSignature(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, err := auth.Authenticate("Bearer not-a-jwt")
	assert.True(t, apperr.Is(err, apperr.KindInvalidToken))
}

func TestAuthenticateExpiredToken(t *testing.T) {
	auth, store := newAuthFixture(t)
	user := signUpUser(t, auth, "a@example.com")

	utils.InitJWT("test-secret", -time.Minute)
	expired, err := utils.GenerateToken(user.ID, false)
	utils.InitJWT("test-secret", time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.UpsertToken(user.ID, expired))

	_, err = auth.AuthenticateToken(expired)
	assert.True(t, apperr.Is(err, apperr.KindInvalidToken))
}

func TestLogoutRevokesStillValidToken(t *testing.T) {
	auth, _ := newAuthFixture(t)
	user := signUpUser(t, auth, "a@example.com")
	token, _, err := auth.SignIn("a@example.com", "password")
	require.NoError(t, err)

	require.NoError(t, auth.SignOut(user.ID))

	// The signature is still valid, but the revocation check must fail.
	_, err = auth.AuthenticateToken(token)
	assert.True(t, apperr.Is(err, apperr.KindRevokedToken))
}

func TestSecondSignInRevokesPriorToken(t *testing.T) {
	auth, _ := newAuthFixture(t)
	signUpUser(t, auth, "a@example.com")

	token1, _, err := auth.SignIn("a@example.com", "password")
	require.NoError(t, err)

	// Token payloads embed issue time at second granularity; make sure the
	// two bearer strings differ.
	time.Sleep(1100 * time.Millisecond)

	token2, _, err := auth.SignIn("a@example.com", "password")
	require.NoError(t, err)
	require.NotEqual(t, token1, token2)

	_, err = auth.AuthenticateToken(token1)
	assert.True(t, apperr.Is(err, apperr.KindRevokedToken))

	_, err = auth.AuthenticateToken(token2)
	assert.NoError(t, err)
}

func TestSignOutWhenNotLoggedIn(t *testing.T) {
	auth, _ := newAuthFixture(t)
	user := signUpUser(t, auth, "a@example.com")

	err := auth.SignOut(user.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotLoggedIn))
}

func TestAuthenticateLoadsRelationSets(t *testing.T) {
	auth, store := newAuthFixture(t)
	user := signUpUser(t, auth, "a@example.com")
	other := signUpUser(t, auth, "b@example.com")

	store.restaurants[7] = &models.Restaurant{ID: 7}
	require.NoError(t, store.CreateFavorite(&models.Favorite{UserID: user.ID, RestaurantID: 7}))
	require.NoError(t, store.CreateLike(&models.Like{UserID: user.ID, RestaurantID: 7}))
	require.NoError(t, store.CreateFollowship(&models.Followship{FollowerID: user.ID, FollowingID: other.ID}))
	require.NoError(t, store.CreateFollowship(&models.Followship{FollowerID: other.ID, FollowingID: user.ID}))

	token, _, err := auth.SignIn("a@example.com", "password")
	require.NoError(t, err)

	authed, err := auth.AuthenticateToken(token)
	require.NoError(t, err)

	assert.True(t, authed.HasFavorited(7))
	assert.True(t, authed.HasLiked(7))
	assert.False(t, authed.HasFavorited(8))
	assert.True(t, authed.IsFollowing(other.ID))
	assert.True(t, authed.FollowerIDs[other.ID])
}
