package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "prod", c.App.Env)
	assert.Empty(t, c.Catalog.SeedPath)
	assert.Zero(t, c.Catalog.FirstItemID)
	assert.Equal(t, "Items", c.Report.ItemsSheet)
	assert.Equal(t, "Products", c.Report.ProductsSheet)
	assert.False(t, c.Metrics.Enabled)
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name  string
		file  string
		env   map[string]string
		check func(t *testing.T, c Config)
	}{
		{
			name: "Missing file gives defaults",
			check: func(t *testing.T, c Config) {
				assert.Equal(t, Default(), c)
			},
		},
		{
			name: "File values",
			file: "app:\n  env: dev\ncatalog:\n  seed_path: shop.yaml\n  first_item_id: 500\nmetrics:\n  enabled: true\n",
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "dev", c.App.Env)
				assert.Equal(t, "shop.yaml", c.Catalog.SeedPath)
				assert.Equal(t, 500, c.Catalog.FirstItemID)
				assert.True(t, c.Metrics.Enabled)
				assert.Equal(t, "Items", c.Report.ItemsSheet)
			},
		},
		{
			name: "Environment overrides file",
			file: "report:\n  items_sheet: Parts\n",
			env:  map[string]string{"INVENTORY_REPORT_ITEMS_SHEET": "Stock", "INVENTORY_CATALOG_FIRST_PRODUCT_ID": "900"},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "Stock", c.Report.ItemsSheet)
				assert.Equal(t, 900, c.Catalog.FirstProductID)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			dir := t.TempDir()
			chdir(t, dir)
			path := filepath.Join(dir, "inventory.yaml")
			if tc.file != "" {
				require.NoError(t, os.WriteFile(path, []byte(tc.file), 0o600))
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			// Act
			c, err := Load(path)

			// Assert
			require.NoError(t, err)
			tc.check(t, c)
		})
	}
}

func TestLoadBrokenFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))

	_, err := Load(path)

	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// standing in for testing.T.Chdir on toolchains older than Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
