package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Catalog struct {
		SeedPath       string `mapstructure:"seed_path"`
		FirstItemID    int    `mapstructure:"first_item_id"`
		FirstProductID int    `mapstructure:"first_product_id"`
	} `mapstructure:"catalog"`

	Report struct {
		ItemsSheet    string `mapstructure:"items_sheet"`
		ProductsSheet string `mapstructure:"products_sheet"`
	} `mapstructure:"report"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "prod")
	v.SetDefault("catalog.seed_path", "")
	v.SetDefault("catalog.first_item_id", 0)
	v.SetDefault("catalog.first_product_id", 0)
	v.SetDefault("report.items_sheet", "Items")
	v.SetDefault("report.products_sheet", "Products")
	v.SetDefault("metrics.enabled", false)
}

// Default returns the configuration used when no file is given.
// Zero first ids mean the seed document decides.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads the config file at path, then lets INVENTORY_* environment
// variables override it (INVENTORY_APP_ENV, INVENTORY_CATALOG_SEED_PATH...).
// A .env file in the working directory is loaded first when present.
// An empty path or a missing file yields the defaults plus environment.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return c, err
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
