package environment

import (
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"gopkg.in/square/go-jose.v2"
)

var ErrKeyNotFound = errors.New("key not found")

// KeySource resolves the public key that signed a token.
type KeySource interface {
	PublicKey(kid string) (*rsa.PublicKey, error)
}

// PEMKey is a single RSA public key; the kid is ignored.
type PEMKey struct {
	key *rsa.PublicKey
}

func LoadPEMKey(file string) (*PEMKey, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ParsePEMKey(data)
}

func ParsePEMKey(data []byte) (*PEMKey, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(data)
	if err != nil {
		return nil, err
	}
	return &PEMKey{key: key}, nil
}

func (k *PEMKey) PublicKey(string) (*rsa.PublicKey, error) {
	return k.key, nil
}

// JWKS is a key set as published at Auth0.JWKSURL.
type JWKS struct {
	set jose.JSONWebKeySet
}

func LoadJWKS(file string) (*JWKS, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ParseJWKS(data)
}

func ParseJWKS(data []byte) (*JWKS, error) {
	jwks := &JWKS{}
	if err := json.Unmarshal(data, &jwks.set); err != nil {
		return nil, fmt.Errorf("unable to parse key set: %w", err)
	}
	return jwks, nil
}

func (k *JWKS) PublicKey(kid string) (*rsa.PublicKey, error) {
	var keys []jose.JSONWebKey
	if kid == "" && len(k.set.Keys) == 1 {
		keys = k.set.Keys
	} else {
		keys = k.set.Key(kid)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: kid %q", ErrKeyNotFound, kid)
	}
	key, ok := keys[0].Key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("key %q is not an rsa public key", kid)
	}
	return key, nil
}
