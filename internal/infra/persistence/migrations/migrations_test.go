package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestVersion(t *testing.T) {
	version, err := LatestVersion()

	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}

func TestMigrationFiles_ArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationFiles, "files")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	assert.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}

func TestInitSchema_DeclaresUniqueConstraints(t *testing.T) {
	data, err := fs.ReadFile(migrationFiles, "files/000001_init_schema.up.sql")
	require.NoError(t, err)

	schema := string(data)
	for _, constraint := range []string{
		"uq_cat_locations_cat_id UNIQUE (cat_id)",
		"uq_adoption_listings_cat_id UNIQUE (cat_id)",
		"uq_adoption_requests_listing_sender UNIQUE (listing_id, sender_id)",
	} {
		assert.Contains(t, schema, constraint)
	}
}

func TestGetLatestVersion(t *testing.T) {
	src, err := iofs.New(migrationFiles, "files")
	require.NoError(t, err)
	defer src.Close()

	version, err := getLatestVersion(src)

	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}
