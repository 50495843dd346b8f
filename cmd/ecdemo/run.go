package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/f3rmion/weier/digest"
	"github.com/f3rmion/weier/ecdsa"
	"github.com/f3rmion/weier/field"
	"github.com/f3rmion/weier/gnarkfp"
	"github.com/f3rmion/weier/group"
	"github.com/f3rmion/weier/ring"
	"github.com/f3rmion/weier/schnorr"
	"github.com/f3rmion/weier/secp256k1"
)

func run(w io.Writer, cfg *Config) error {
	h, err := digest.ByName(cfg.Hash)
	if err != nil {
		return err
	}

	switch cfg.Curve {
	case "secp256k1":
		return demo[field.Element[ring.Int]](w, secp256k1.New(secp256k1.WithHasher(h)), h, cfg)
	case "secp256k1-gnark":
		g, err := gnarkfp.NewSecp256k1(gnarkfp.WithHasher(h))
		if err != nil {
			return err
		}
		return demo[gnarkfp.Secp256k1Fp](w, g, h, cfg)
	case "bn254":
		g, err := gnarkfp.NewBN254(gnarkfp.WithHasher(h))
		if err != nil {
			return err
		}
		return demo[gnarkfp.BN254Fp](w, g, h, cfg)
	}
	return fmt.Errorf("unknown curve %q", cfg.Curve)
}

func demo[T ring.Ring[T]](w io.Writer, g group.Group[T], h digest.Hasher, cfg *Config) error {
	priv, err := loadKey(g, cfg.Secret)
	if err != nil {
		return err
	}
	pub, err := g.Encode(priv.Public)
	if err != nil {
		return err
	}
	msg := []byte(cfg.Message)

	fmt.Fprintf(w, "curve:      %s\n", g.Name())
	fmt.Fprintf(w, "public key: %x\n", pub)

	switch cfg.Scheme {
	case "ecdsa":
		hash := h.Sum(msg)
		sig, err := ecdsa.Sign(rand.Reader, g, priv, hash)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "signature:  r=%s s=%s\n", sig.R.Text(16), sig.S.Text(16))
		fmt.Fprintf(w, "valid:      %t\n", ecdsa.Verify(g, priv.Public, hash, sig))
	case "schnorr":
		sig, err := schnorr.Sign(rand.Reader, g, priv.D, msg)
		if err != nil {
			return err
		}
		R, err := g.Encode(sig.R)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "signature:  R=%x z=%s\n", R, sig.Z.Text(16))
		fmt.Fprintf(w, "valid:      %t\n", schnorr.Verify(g, priv.Public, msg, sig))
	default:
		return fmt.Errorf("unknown scheme %q", cfg.Scheme)
	}
	return nil
}

func loadKey[T ring.Ring[T]](g group.Group[T], secret string) (*ecdsa.PrivateKey[T], error) {
	if secret == "" {
		return ecdsa.GenerateKey(g, rand.Reader)
	}
	b, err := hex.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("invalid secret: %w", err)
	}
	return ecdsa.NewPrivateKey(g, ring.IntFromBytes(b))
}
