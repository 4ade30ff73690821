package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	mgr, err := NewManager(store)
	require.NoError(t, err)
	return mgr
}

func TestManager_GuestByDefault(t *testing.T) {
	mgr := newTestManager(t)
	assert.Nil(t, mgr.Current())
	assert.False(t, mgr.IsAuthenticated())
	assert.Empty(t, mgr.Token())
}

func TestManager_LoginPersistsBothFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	store := NewStore(path)
	mgr, err := NewManager(store)
	require.NoError(t, err)

	require.NoError(t, mgr.Login("tok-123", "user@example.com"))
	require.True(t, mgr.IsAuthenticated())
	assert.Equal(t, "tok-123", mgr.Token())
	assert.Equal(t, "user@example.com", mgr.Current().Email)

	// A fresh manager over the same file sees the same session.
	mgr2, err := NewManager(NewStore(path))
	require.NoError(t, err)
	require.True(t, mgr2.IsAuthenticated())
	assert.Equal(t, "tok-123", mgr2.Token())

	// The file must hold token and email together.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "tok-123", raw["token"])
	assert.Equal(t, "user@example.com", raw["email"])
}

func TestManager_LoginRejectsPartialSession(t *testing.T) {
	mgr := newTestManager(t)
	assert.Error(t, mgr.Login("", "user@example.com"))
	assert.Error(t, mgr.Login("tok", ""))
	assert.False(t, mgr.IsAuthenticated())
}

func TestManager_LogoutClearsEverything(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	mgr, err := NewManager(NewStore(path))
	require.NoError(t, err)

	require.NoError(t, mgr.Login("tok-123", "user@example.com"))
	require.NoError(t, mgr.SetLastRecordID("rec-9"))
	require.NoError(t, mgr.Logout())

	assert.Nil(t, mgr.Current())
	assert.Empty(t, mgr.LastRecordID())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestManager_LogoutWithoutSessionIsNoop(t *testing.T) {
	mgr := newTestManager(t)
	assert.NoError(t, mgr.Logout())
}

func TestManager_LastRecordIDOverwritten(t *testing.T) {
	mgr := newTestManager(t)
	require.NoError(t, mgr.Login("tok", "u@example.com"))
	require.NoError(t, mgr.SetLastRecordID("first"))
	require.NoError(t, mgr.SetLastRecordID("second"))
	assert.Equal(t, "second", mgr.LastRecordID())
	// Token survives record id updates.
	assert.Equal(t, "tok", mgr.Token())
}

func TestStore_CorruptFileTreatedAsGuest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	mgr, err := NewManager(NewStore(path))
	require.NoError(t, err)
	assert.Nil(t, mgr.Current())
}

// makeUnsignedJWT builds a syntactically valid JWT with the given claims.
func makeUnsignedJWT(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	body := base64.RawURLEncoding.EncodeToString(payload)
	return fmt.Sprintf("%s.%s.%s", header, body, base64.RawURLEncoding.EncodeToString([]byte("sig")))
}

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	token := makeUnsignedJWT(t, map[string]any{"sub": "user-1", "exp": exp})

	info, err := InspectToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", info.Subject)
	assert.False(t, info.Expired(time.Now()))

	expired := makeUnsignedJWT(t, map[string]any{"sub": "user-1", "exp": time.Now().Add(-time.Hour).Unix()})
	info, err = InspectToken(expired)
	require.NoError(t, err)
	assert.True(t, info.Expired(time.Now()))

	_, err = InspectToken("not-a-jwt")
	assert.Error(t, err)
}

func TestInspectToken_NoExpiryNeverExpires(t *testing.T) {
	token := makeUnsignedJWT(t, map[string]any{"sub": "user-1"})
	info, err := InspectToken(token)
	require.NoError(t, err)
	assert.False(t, info.Expired(time.Now()))
}
