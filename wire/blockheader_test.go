// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"reflect"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// mainnetGenesisHeader returns the header of the mainnet genesis block. It is
// used as a known-good vector for serialization and hashing tests.
func mainnetGenesisHeader(t *testing.T) *BlockHeader {
	t.Helper()

	merkleRoot, err := chainhash.NewHashFromStr(
		"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")
	if err != nil {
		t.Fatalf("NewHashFromStr: unexpected error: %v", err)
	}

	return &BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: *merkleRoot,
		Timestamp:  time.Unix(1231006505, 0),
		Bits:       0x1d00ffff,
		Nonce:      2083236893,
	}
}

// TestBlockHeaderHash ensures BlockHash produces the expected hash for a
// known header.
func TestBlockHeaderHash(t *testing.T) {
	header := mainnetGenesisHeader(t)

	wantHash, err := chainhash.NewHashFromStr(
		"000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f")
	if err != nil {
		t.Fatalf("NewHashFromStr: unexpected error: %v", err)
	}

	blockHash := header.BlockHash()
	if !blockHash.IsEqual(wantHash) {
		t.Errorf("TestBlockHeaderHash: wrong hash: got %s want %s",
			blockHash, wantHash)
	}
}

// TestBlockHeaderSerialize tests BlockHeader serialize and deserialize against
// the known genesis header encoding.
func TestBlockHeaderSerialize(t *testing.T) {
	wantEncoded, err := hex.DecodeString(
		"010000000000000000000000000000000000000000000000000000000000" +
			"0000000000003ba3edfd7a7b12b27ac72c3e67768f617fc81bc388" +
			"8a51323a9fb8aa4b1e5e4a29ab5f49ffff001d1dac2b7c")
	if err != nil {
		t.Fatalf("DecodeString: unexpected error: %v", err)
	}

	header := mainnetGenesisHeader(t)

	var buf bytes.Buffer
	if err := header.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: unexpected error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), wantEncoded) {
		t.Fatalf("TestBlockHeaderSerialize: wrong encoding: got %x want %x",
			buf.Bytes(), wantEncoded)
	}

	var decoded BlockHeader
	if err := decoded.Deserialize(bytes.NewReader(wantEncoded)); err != nil {
		t.Fatalf("Deserialize: unexpected error: %v", err)
	}
	if !reflect.DeepEqual(&decoded, header) {
		t.Errorf("TestBlockHeaderSerialize: round trip mismatch: got %v "+
			"want %v", &decoded, header)
	}
}

// TestCashNetString ensures CashNet constants render their names and unknown
// networks fall back to the raw value.
func TestCashNetString(t *testing.T) {
	tests := []struct {
		in   CashNet
		want string
	}{
		{Mainnet, "Mainnet"},
		{Testnet, "Testnet"},
		{Regtest, "Regtest"},
		{Simnet, "Simnet"},
		{0xffffffff, "Unknown CashNet (4294967295)"},
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("TestCashNetString test #%d failed: got %s want %s",
				i, result, test.want)
		}
	}
}
