package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := readConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, &Config{Curve: "secp256k1", Scheme: "ecdsa", Hash: "sha256", Message: "hello"}, cfg)
	})

	t.Run("FileAndFlags", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "demo.yaml")
		yaml := "curve: bn254\nscheme: schnorr\nmessage: from file\n"
		require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

		cfg, err := readConfig([]string{"--config", path, "--message", "from flag"})
		require.NoError(t, err)
		assert.Equal(t, "bn254", cfg.Curve)
		assert.Equal(t, "schnorr", cfg.Scheme)
		assert.Equal(t, "sha256", cfg.Hash)
		assert.Equal(t, "from flag", cfg.Message)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := readConfig([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")})
		assert.Error(t, err)
	})

	t.Run("UnknownFlag", func(t *testing.T) {
		_, err := readConfig([]string{"--nope"})
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	for _, c := range []string{"secp256k1", "secp256k1-gnark", "bn254"} {
		for _, s := range []string{"ecdsa", "schnorr"} {
			t.Run(c+"/"+s, func(t *testing.T) {
				var out bytes.Buffer
				cfg := &Config{Curve: c, Scheme: s, Hash: "keccak256", Message: "hi", Secret: "0a"}
				require.NoError(t, run(&out, cfg))
				assert.Contains(t, out.String(), "valid:      true")
			})
		}
	}
}

func TestRunErrors(t *testing.T) {
	base := Config{Curve: "secp256k1", Scheme: "ecdsa", Hash: "sha256", Message: "hi"}

	cases := map[string]func(*Config){
		"Curve":      func(c *Config) { c.Curve = "p256" },
		"Scheme":     func(c *Config) { c.Scheme = "bls" },
		"Hash":       func(c *Config) { c.Hash = "md5" },
		"SecretHex":  func(c *Config) { c.Secret = "zz" },
		"SecretZero": func(c *Config) { c.Secret = "00" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			assert.Error(t, run(&bytes.Buffer{}, &cfg))
		})
	}
}
