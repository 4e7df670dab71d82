package main

import (
	"crypto"
)

// Extends crypto.Hash with algorithms missing from the standard registry
const (
	BLAKE3 crypto.Hash = 100 + iota
	GOST
	GOSTCryptoPro
	KECCAK256
	KECCAK512
	MD2
	SM3
	STREEBOG256
	STREEBOG512
	TIGER
	WHIRLPOOL
)

type Algorithm struct {
	name string
}

// A Checksum is one digest record: the algorithm, the file it belongs to
// and the digest bytes, either computed or parsed from a checksum line.
// hash is zero for parsed records that declared no algorithm.
type Checksum struct {
	hash crypto.Hash
	file string
	sum  []byte
}

// A Result is the outcome of verifying one Checksum.
// ok is nil when the file was missing.
type Result struct {
	hash crypto.Hash
	file string
	ok   *bool
}

// A checkFile holds the records parsed from one checksum file.
type checkFile struct {
	file      string
	records   []*Checksum
	impropers []uint64 // line numbers of improperly formatted lines
}

type Output struct {
	Name string `json:"algorithm"`
	File string `json:"file"`
	Sum  string `json:"digest"`
}

type Style int

const (
	styleSFV Style = iota
	styleBSD
	styleJSON
)

var (
	algorithms map[crypto.Hash]*Algorithm
	chosen     crypto.Hash // explicit -H selection, zero if absent
	name2Hash  map[string]crypto.Hash
	style      Style
)

var opts struct {
	algorithm string
	check     bool
	ignore    bool
	insecure  bool
	json      bool
	list      bool
	mmap      bool
	output    string
	pretty    bool
	quiet     bool // Used by the -c option
	status    bool // Used by the -c option
	strict    bool // Used by the -c option
	style     string
	threads   int
	version   bool
	warn      bool // Used by the -c option
}
