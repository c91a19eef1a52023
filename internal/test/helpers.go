package test

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"

	"github.com/blinklabs-io/fueltx/crypto"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// SecretKeys returns count deterministic secret keys generated from seed
func SecretKeys(seed int64, count int) []crypto.SecretKey {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec
	ret := make([]crypto.SecretKey, 0, count)
	for range count {
		key, err := crypto.GenerateSecretKey(rng)
		if err != nil {
			panic(fmt.Sprintf("error generating secret key: %s", err))
		}
		ret = append(ret, key)
	}
	return ret
}

// FilledBytes32 returns a 32-byte array with every byte set to b
func FilledBytes32(b byte) [32]byte {
	var ret [32]byte
	for idx := range ret {
		ret[idx] = b
	}
	return ret
}
