package main

import (
	"crypto"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Digests of "Hello, world!"
var xdigests = map[crypto.Hash]string{
	crypto.BLAKE2b_512: "a2764d133a16816b5847a737a786f2ece4c148095c5faa73e24b4cc5d666c3e45ec271504e14dc6127ddfce4e144fb23b91a6f7b04b53d695502290722953b0f",
	crypto.BLAKE2s_256: "30d8777f0e178582ec8cd2fcdc18af57c828ee2f89e978df52c8e7af078bd5cf",
	BLAKE3:             "ede5c0b10f2ec4979c69b52f61e42ff5b413519ce09be0f14d098dcfe5f6f98d",
	GOST:               "711e00e034a9254765f6270bd02b6badf9dfe380a16593eff6e1ef1eec7ca023",
	GOSTCryptoPro:      "c003abf7ee48c42fe23cad86d56d2c982461f94d46b109a9f6b2e960f583cf52",
	KECCAK256:          "b6e16d27ac5ab427a7f68900ac5559ce272dc6c37c82b3e052246c82244c50e4",
	KECCAK512:          "101f353a4727cc94ef81613bb38a807ebc888e2061baa4f845c84cd3c317f3430fda3dbeb44010844b35bccc8e190061d05b4d002c709615275a44e18e494f0c",
	MD2:                "8cca0e965edd0e223b744f9cedf8e141",
	crypto.MD4:         "0abe9ee1f376caa1bcecad9042f16e73",
	crypto.MD5:         "6cd3556deb0da54bca060b4c39479839",
	crypto.RIPEMD160:   "58262d1fbdbe4530d8865d3518c6d6e41002610f",
	crypto.SHA1:        "943a702d06f34599aee1f8da8ef9f7296031d699",
	crypto.SHA224:      "8552d8b7a7dc5476cb9e25dee69a8091290764b7f2a64fe6e78e9568",
	crypto.SHA256:      "315f5bdb76d078c43b8ac0064e4a0164612b1fce77c869345bfc94c75894edd3",
	crypto.SHA384:      "55bc556b0d2fe0fce582ba5fe07baafff035653638c7ac0d5494c2a64c0bea1cc57331c7c12a45cdbca7f4c34a089eeb",
	crypto.SHA512:      "c1527cd893c124773d811911970c8fe6e857d6df5dc9226bd8a160614c0cd963a4ddea2b94bb7d36021ef9d865d5cea294a82dd49a0bb269f51f6e7a57f79421",
	crypto.SHA3_224:    "6a33e22f20f16642697e8bd549ff7b759252ad56c05a1b0acc31dc69",
	crypto.SHA3_256:    "f345a219da005ebe9c1a1eaad97bbf38a10c8473e41d0af7fb617caa0c6aa722",
	crypto.SHA3_384:    "6ba9ea268965916f5937228dde678c202f9fe756a87d8b1b7362869583a45901fd1a27289d72fc0e3ff48b1b78827d3a",
	crypto.SHA3_512:    "8e47f1185ffd014d238fabd02a1a32defe698cbf38c037a90e3c0a0a32370fb52cbd641250508502295fcabcbf676c09470b27443868c8e5f70e26dc337288af",
	STREEBOG256:        "ccb6fae3553c101715da535328de718f6f6e412db8611a38025c510ac8f85aeb",
	STREEBOG512:        "a83352d35dc8f07ca8048e6752415e5e991527e29415ade0eaad6e48d67bf37b60dfd7bb4475cbcbe297ed016128391c312dfe3a00e0a9bd0e497389c888eedc",
	TIGER:              "b5e5dd73a5894236937084131bb845189cdc5477579b9f36",
	WHIRLPOOL:          "a1a8703be5312b139b42eb331aa800ccaca0c34d58c6988e44f45489cfb16beb4b6bf0ce20be1db22a10b0e4bb680480a3d2429e6c483085453c098b65852495",
}

// Digests of "abc" for the algorithms not covered above
var xdigestsABC = map[crypto.Hash]string{
	crypto.BLAKE2b_256: "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319",
	crypto.BLAKE2b_384: "6f56a82c8e7ef526dfe182eb5212f7db9df1317e57815dbda46083fc30f54ee6c66ba83be64b302d7cba6ce15bb556f4",
	crypto.SHA512_224:  "4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa",
	crypto.SHA512_256:  "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23",
	SM3:                "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0",
}

func Test_hashBytes(t *testing.T) {
	for h, want := range xdigests {
		got := hex.EncodeToString(hashBytes(h, []byte("Hello, world!")))
		if got != want {
			t.Errorf("%s: got %v; want %v", algorithms[h].name, got, want)
		}
	}
	for h, want := range xdigestsABC {
		got := hex.EncodeToString(hashBytes(h, []byte("abc")))
		if got != want {
			t.Errorf("%s: got %v; want %v", algorithms[h].name, got, want)
		}
	}
}

func Test_hashF(t *testing.T) {
	// SHA256("The quick brown fox jumps over the lazy dog")
	foxString := "The quick brown fox jumps over the lazy dog"
	foxSha256 := "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"

	got, err := hashF(crypto.SHA256, strings.NewReader(foxString))
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(got) != foxSha256 {
		t.Errorf("hashF(%q) got %v; want %v", foxString, hex.EncodeToString(got), foxSha256)
	}
}

func Test_hashFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "fox")
	if err := os.WriteFile(file, []byte("Hello, world!"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := hashFile(crypto.MD5, file)
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(got) != xdigests[crypto.MD5] {
		t.Errorf("hashFile(%q) got %v; want %v", file, hex.EncodeToString(got), xdigests[crypto.MD5])
	}

	oldMmap := opts.mmap
	opts.mmap = true
	defer func() { opts.mmap = oldMmap }()

	got, err = hashFile(crypto.MD5, file)
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(got) != xdigests[crypto.MD5] {
		t.Errorf("hashFile(%q) with mmap got %v; want %v", file, hex.EncodeToString(got), xdigests[crypto.MD5])
	}

	if _, err := hashFile(crypto.MD5, filepath.Dir(file)); err == nil {
		t.Errorf("hashFile(%q) expected error", filepath.Dir(file))
	}
	if _, err := hashFile(crypto.MD5, filepath.Join(t.TempDir(), "nonexistent")); err == nil {
		t.Errorf("hashFile on nonexistent file expected error")
	}
}

func BenchmarkHashes(b *testing.B) {
	buf := make([]byte, 16*1024)

	for _, h := range hashes {
		b.Run(algorithms[h].name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				hashBytes(h, buf)
			}
		})
	}
}
