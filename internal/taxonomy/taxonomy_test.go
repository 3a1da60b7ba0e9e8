package taxonomy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/service"
)

func TestRead_ReturnsFileVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	content := `{"categories": [{"name": "Food", "subcategories": ["Groceries"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	provider := NewProvider(path)
	data, err := provider.Read(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestRead_MissingFileIsResourceUnavailable(t *testing.T) {
	provider := NewProvider(filepath.Join(t.TempDir(), "does-not-exist.json"))

	data, err := provider.Read(context.Background())

	assert.Nil(t, data)
	assert.Error(t, err)
	assert.Equal(t, service.KindResourceUnavailable, service.KindOf(err))
}

func TestRead_DoesNotValidateJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	provider := NewProvider(path)
	data, err := provider.Read(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "not json at all", string(data))
}
