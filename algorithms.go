package main

import (
	"crypto"
	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"slices"
	"strings"

	"github.com/cxmcc/tiger"
	md2 "github.com/htruong/go-md2"
	"github.com/jzelinskie/whirlpool"
	"github.com/tjfoc/gmsm/sm3"
	"github.com/zeebo/blake3"
	"go.cypherpunks.ru/gogost/v5/gost28147"
	"go.cypherpunks.ru/gogost/v5/gost34112012256"
	"go.cypherpunks.ru/gogost/v5/gost34112012512"
	"go.cypherpunks.ru/gogost/v5/gost341194"
	_ "golang.org/x/crypto/blake2b"
	_ "golang.org/x/crypto/blake2s"
	_ "golang.org/x/crypto/md4"
	_ "golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Supported algorithms in display order
var hashes = []crypto.Hash{
	crypto.BLAKE2b_512,
	crypto.BLAKE2b_256,
	crypto.BLAKE2b_384,
	crypto.BLAKE2s_256,
	BLAKE3,
	GOST,
	GOSTCryptoPro,
	KECCAK256,
	KECCAK512,
	MD2,
	crypto.MD4,
	crypto.MD5,
	crypto.RIPEMD160,
	crypto.SHA1,
	crypto.SHA224,
	crypto.SHA256,
	crypto.SHA384,
	crypto.SHA512,
	crypto.SHA512_224,
	crypto.SHA512_256,
	crypto.SHA3_224,
	crypto.SHA3_256,
	crypto.SHA3_384,
	crypto.SHA3_512,
	SM3,
	STREEBOG256,
	STREEBOG512,
	TIGER,
	WHIRLPOOL,
}

// Rejected for verification unless --allow-insecure
var insecure = []crypto.Hash{MD2, crypto.MD4, crypto.MD5, crypto.SHA1}

// Canonical names where crypto.Hash's own spelling doesn't apply
var names = map[crypto.Hash]string{
	crypto.BLAKE2b_512: "BLAKE2b",
	crypto.BLAKE2s_256: "BLAKE2s",
	BLAKE3:             "BLAKE3",
	GOST:               "GOST",
	GOSTCryptoPro:      "GOST-CryptoPro",
	KECCAK256:          "Keccak-256",
	KECCAK512:          "Keccak-512",
	MD2:                "MD2",
	SM3:                "SM3",
	STREEBOG256:        "Streebog-256",
	STREEBOG512:        "Streebog-512",
	TIGER:              "Tiger",
	WHIRLPOOL:          "Whirlpool",
}

func init() {
	algorithms = make(map[crypto.Hash]*Algorithm)
	name2Hash = make(map[string]crypto.Hash)
	for _, h := range hashes {
		name, ok := names[h]
		if !ok {
			name = strings.ReplaceAll(strings.ReplaceAll(h.String(), "SHA-", "SHA"), "/", "-")
		}
		algorithms[h] = &Algorithm{name: name}
		name2Hash[strings.ToLower(name)] = h
	}
	// Size-qualified aliases for the default BLAKE2 widths
	name2Hash["blake2b-512"] = crypto.BLAKE2b_512
	name2Hash["blake2s-256"] = crypto.BLAKE2s_256
}

func newHash(h crypto.Hash) hash.Hash {
	switch h {
	case BLAKE3:
		return blake3.New()
	case GOST:
		return gost341194.New(&gost28147.SboxIdGostR341194TestParamSet)
	case GOSTCryptoPro:
		return gost341194.New(&gost28147.SboxIdGostR341194CryptoProParamSet)
	case KECCAK256:
		return sha3.NewLegacyKeccak256()
	case KECCAK512:
		return sha3.NewLegacyKeccak512()
	case MD2:
		return md2.New()
	case SM3:
		return sm3.New()
	case STREEBOG256:
		return gost34112012256.New()
	case STREEBOG512:
		return gost34112012512.New()
	case TIGER:
		return tiger.New()
	case WHIRLPOOL:
		return whirlpool.New()
	default:
		return h.New()
	}
}

// Algorithm names are matched case-insensitively
func parseHashName(name string) (crypto.Hash, error) {
	if h, ok := name2Hash[strings.ToLower(name)]; ok {
		return h, nil
	}
	return 0, fmt.Errorf("unknown hash algorithm: %s", name)
}

// resolveHash picks the algorithm for a record: an explicit -H selection
// wins over whatever the record declared.
func resolveHash(cli, declared crypto.Hash, allowInsecure bool) (crypto.Hash, error) {
	h := cli
	if h == 0 {
		h = declared
	}
	if h == 0 {
		return 0, errors.New("unable to determine hash algorithm")
	}
	if !allowInsecure && slices.Contains(insecure, h) {
		return 0, fmt.Errorf("%s is insecure (use --allow-insecure)", algorithms[h].name)
	}
	return h, nil
}
