package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/suite-pro/internal/domain"
	"github.com/tu-usuario/suite-pro/internal/domain/entity"
	"github.com/tu-usuario/suite-pro/internal/infrastructure/localstore"
)

func TestFileStore_RoundTripSinPerdida(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_user.json")
	store := localstore.NewFileStore(path)

	u := &entity.User{ID: "42", Name: "Jane", Email: "jane@x.com", Role: entity.RoleManager}
	require.NoError(t, store.Save(u))

	loaded, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, u, loaded, "id/name/email/role deben hacer round-trip sin pérdida")
}

func TestFileStore_ArchivoAusente_NoEsError(t *testing.T) {
	store := localstore.NewFileStore(filepath.Join(t.TempDir(), "no-existe.json"))
	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_ContenidoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_user.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o600))

	store := localstore.NewFileStore(path)
	_, _, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrCorruptSession)
}

func TestFileStore_Clear_Idempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_user.json")
	store := localstore.NewFileStore(path)
	require.NoError(t, store.Save(&entity.User{ID: "1", Email: "a@b.com", Role: entity.RoleUser}))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "limpiar sin registro previo no es error")

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}
