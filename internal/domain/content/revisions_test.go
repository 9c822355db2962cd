package content_test

import (
	"encoding/json"
	"testing"

	"tickets-app/internal/domain/content"
	"tickets-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestWithoutDocument(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := content.Latest(db, content.DefaultKey)
	assert.ErrorIs(t, err, content.ErrNoDocument)
}

func TestSaveBumpsVersion(t *testing.T) {
	db := testutil.NewTestDB(t)

	first, err := content.Save(db, content.DefaultKey, json.RawMessage(`{"title":"v1"}`), "admin@x.com")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)

	second, err := content.Save(db, content.DefaultKey, json.RawMessage(`{"title":"v2"}`), "admin@x.com")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Version)

	head, err := content.Latest(db, content.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, 2, head.Version)
	assert.JSONEq(t, `{"title":"v2"}`, string(head.Document))
}

func TestRestoreReturnsPriorDocument(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := content.Save(db, content.DefaultKey, json.RawMessage(`{"title":"v1"}`), "admin@x.com")
	require.NoError(t, err)
	_, err = content.Save(db, content.DefaultKey, json.RawMessage(`{"title":"v2"}`), "admin@x.com")
	require.NoError(t, err)

	replaced, head, err := content.Restore(db, content.DefaultKey, "admin@x.com")
	require.NoError(t, err)

	// the document that was current before the restore comes back to the caller
	assert.Equal(t, 2, replaced.Version)
	assert.JSONEq(t, `{"title":"v2"}`, string(replaced.Document))

	// the new head carries the previous content under a fresh version
	assert.Equal(t, 3, head.Version)
	assert.JSONEq(t, `{"title":"v1"}`, string(head.Document))

	latest, err := content.Latest(db, content.DefaultKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"v1"}`, string(latest.Document))
}

func TestRestoreWithoutBackup(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, _, err := content.Restore(db, content.DefaultKey, "admin@x.com")
	assert.ErrorIs(t, err, content.ErrNoBackup)

	_, err = content.Save(db, content.DefaultKey, json.RawMessage(`{"title":"only"}`), "admin@x.com")
	require.NoError(t, err)

	_, _, err = content.Restore(db, content.DefaultKey, "admin@x.com")
	assert.ErrorIs(t, err, content.ErrNoBackup)
}

func TestKeysAreIndependent(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := content.Save(db, "site", json.RawMessage(`{"a":1}`), "admin@x.com")
	require.NoError(t, err)
	other, err := content.Save(db, "theme", json.RawMessage(`{"b":2}`), "admin@x.com")
	require.NoError(t, err)

	assert.Equal(t, 1, other.Version)
}
