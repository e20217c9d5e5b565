package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "BESTBUY_CONFIG_FILE"

type Promotion struct {
	Type    string  `mapstructure:"type"`
	Name    string  `mapstructure:"name"`
	Percent float64 `mapstructure:"percent"`
}

type Product struct {
	Name        string     `mapstructure:"name"`
	Price       float64    `mapstructure:"price"`
	Quantity    int        `mapstructure:"quantity"`
	Kind        string     `mapstructure:"kind"`
	MaxPerOrder int        `mapstructure:"max_per_order"`
	Promotion   *Promotion `mapstructure:"promotion"`
}

type catalog struct {
	Products []Product `mapstructure:"products"`
}

type Config struct {
	LogLevel slog.Level `mapstructure:"log_level"`
	Catalog  catalog    `mapstructure:"catalog"`
}

func Load() Config {
	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile reads the config from the given path. A missing file is
// tolerated, a malformed one is not. The default catalog applies when
// the file defines no products.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	err := v.ReadInConfig()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	var cfg Config
	err = v.UnmarshalExact(&cfg)
	if err != nil {
		return Config{}, err
	}

	if len(cfg.Catalog.Products) == 0 {
		cfg.Catalog.Products = defaultProducts()
	}

	return cfg, nil
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

// defaultProducts seeds the store when the config file defines no
// catalog.
func defaultProducts() []Product {
	return []Product{
		{Name: "MacBook Air M2", Price: 1450, Quantity: 100},
		{Name: "Bose QuietComfort Earbuds", Price: 250, Quantity: 500},
		{Name: "Google Pixel 7", Price: 500, Quantity: 250},
	}
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q

	Catalog:
	Products=%d

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		len(c.Catalog.Products),
	)
}
