// retargetsim builds a synthetic chain with configurable block spacing and
// reports how the required difficulty responds, block by block. It is a
// developer tool for eyeballing retarget behavior around activation
// boundaries and timestamp anomalies without mining anything.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/grospy/bitcoincashplus/blockchain"
	"github.com/grospy/bitcoincashplus/wire"
)

func main() {
	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()
	if cfg.Verbose {
		blockchain.UseLogger(log)
	}

	params := cfg.params
	log.Infof("Simulating %d blocks on %s: spacing %ds, activation height %d",
		cfg.Blocks, params.Name, cfg.Spacing, params.CashPlusActivationHeight)

	genesis := blockchain.NewBlockNode(&wire.BlockHeader{
		Timestamp: time.Unix(cfg.StartTime, 0),
		Bits:      params.PowLimitBits,
	}, nil)
	view := blockchain.NewChainView(genesis)

	transitions := 0
	for height := int64(1); height <= int64(cfg.Blocks); height++ {
		tip := view.Tip()

		blockTime := tip.Timestamp() + cfg.Spacing
		if height == cfg.AnomalyHeight {
			blockTime += cfg.AnomalySkew
			log.Infof("height %d: skewing timestamp by %ds", height,
				cfg.AnomalySkew)
		}

		header := &wire.BlockHeader{
			Timestamp: time.Unix(blockTime, 0),
			Bits:      tip.Bits(),
		}
		bits, err := blockchain.NextWorkRequired(tip, header, params)
		if err != nil {
			log.Errorf("height %d: %s", height, err)
			os.Exit(1)
		}
		header.Bits = bits

		if bits != tip.Bits() {
			transitions++
			if cfg.Verbose {
				log.Infof("height %d: %08x -> %08x", height,
					tip.Bits(), bits)
			}
		}

		view.SetTip(blockchain.NewBlockNode(header, tip))
	}

	tip := view.Tip()
	elapsed := tip.Timestamp() - view.Genesis().Timestamp()
	log.Infof("Done: height %d, final bits %08x, %d difficulty transitions, "+
		"%s simulated", tip.Height(), tip.Bits(), transitions,
		time.Duration(elapsed)*time.Second)
	log.Infof("Chain work: %s", tip.WorkSum())
}
