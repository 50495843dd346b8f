package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config selects the curve, scheme and input of a demo run.
type Config struct {
	Curve   string `mapstructure:"curve"`
	Scheme  string `mapstructure:"scheme"`
	Hash    string `mapstructure:"hash"`
	Message string `mapstructure:"message"`
	Secret  string `mapstructure:"secret"`
}

func readConfig(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("ecdemo", pflag.ContinueOnError)
	configFile := flags.String("config", "", "path to a YAML config file")
	flags.String("curve", "secp256k1", "curve: secp256k1, secp256k1-gnark or bn254")
	flags.String("scheme", "ecdsa", "signature scheme: ecdsa or schnorr")
	flags.String("hash", "sha256", "hash: sha256, hash256, blake2b or keccak256")
	flags.String("message", "hello", "message to sign")
	flags.String("secret", "", "hex private key; random when empty")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if *configFile != "" {
		dir, name := filepath.Split(*configFile)
		if dir == "" {
			dir = "."
		}
		v.SetConfigName(strings.TrimSuffix(name, filepath.Ext(name)))
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	// Flags set on the command line override the file.
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

func main() {
	cfg, err := readConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("signing %q on %s with %s/%s", cfg.Message, cfg.Curve, cfg.Scheme, cfg.Hash)

	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}
