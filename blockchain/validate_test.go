// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/grospy/bitcoincashplus/chaincfg"
	"github.com/grospy/bitcoincashplus/wire"
)

// genesisHeader returns the mainnet genesis header, whose hash is a
// known-good solution for its 0x1d00ffff target.
func genesisHeader(t *testing.T) *wire.BlockHeader {
	t.Helper()

	merkleRoot, err := chainhash.NewHashFromStr(
		"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")
	if err != nil {
		t.Fatalf("NewHashFromStr: unexpected error: %v", err)
	}

	return &wire.BlockHeader{
		Version:    1,
		MerkleRoot: *merkleRoot,
		Timestamp:  time.Unix(1231006505, 0),
		Bits:       0x1d00ffff,
		Nonce:      2083236893,
	}
}

// TestCheckProofOfWork ensures valid solutions are accepted and that
// unsatisfiable targets, out-of-range targets, and insufficient hashes are
// each rejected with the right rule error.
func TestCheckProofOfWork(t *testing.T) {
	powLimit := chaincfg.MainnetParams.PowLimit

	header := genesisHeader(t)
	if err := CheckProofOfWork(header, powLimit); err != nil {
		t.Fatalf("CheckProofOfWork: unexpected error for valid "+
			"solution: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*wire.BlockHeader)
		want   ErrorCode
	}{
		{
			name:   "hash above target",
			mutate: func(h *wire.BlockHeader) { h.Nonce++ },
			want:   ErrHighHash,
		},
		{
			name:   "target above proof-of-work limit",
			mutate: func(h *wire.BlockHeader) { h.Bits = 0x1d01ffff },
			want:   ErrUnexpectedDifficulty,
		},
		{
			name:   "zero target",
			mutate: func(h *wire.BlockHeader) { h.Bits = 0 },
			want:   ErrUnexpectedDifficulty,
		},
		{
			name:   "overflowing target",
			mutate: func(h *wire.BlockHeader) { h.Bits = 0xff123456 },
			want:   ErrUnexpectedDifficulty,
		},
		{
			name:   "negative target",
			mutate: func(h *wire.BlockHeader) { h.Bits = 0x01810000 },
			want:   ErrUnexpectedDifficulty,
		},
	}

	for i, test := range tests {
		header := genesisHeader(t)
		test.mutate(header)

		err := CheckProofOfWork(header, powLimit)
		if err == nil {
			t.Errorf("CheckProofOfWork #%d (%s): no error", i, test.name)
			continue
		}
		rerr, ok := err.(RuleError)
		if !ok {
			t.Errorf("CheckProofOfWork #%d (%s): error is not a "+
				"RuleError: %v", i, test.name, err)
			continue
		}
		if rerr.ErrorCode != test.want {
			t.Errorf("CheckProofOfWork #%d (%s): got %v, want %v",
				i, test.name, rerr.ErrorCode, test.want)
		}
	}
}
