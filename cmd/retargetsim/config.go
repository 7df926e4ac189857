package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/grospy/bitcoincashplus/chaincfg"
)

type configFlags struct {
	Testnet       bool   `long:"testnet" description:"Simulate on the test network parameters"`
	Regtest       bool   `long:"regtest" description:"Simulate on the regression test network parameters"`
	Simnet        bool   `long:"simnet" description:"Simulate on the simulation network parameters"`
	Blocks        uint64 `short:"n" long:"numblocks" default:"300" description:"Number of blocks to simulate"`
	Spacing       int64  `short:"s" long:"spacing" default:"600" description:"Seconds between simulated blocks"`
	StartTime     int64  `long:"starttime" default:"1269211443" description:"Unix timestamp of the simulated genesis block"`
	AnomalyHeight int64  `long:"anomaly-height" default:"-1" description:"Height of a block whose timestamp is skewed, or -1 for none"`
	AnomalySkew   int64  `long:"anomaly-skew" default:"5400" description:"Seconds added to the anomalous block's timestamp"`
	Verbose       bool   `short:"v" long:"verbose" description:"Log every difficulty transition"`

	params *chaincfg.Params
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	numNets := 0
	cfg.params = &chaincfg.MainnetParams
	if cfg.Testnet {
		numNets++
		cfg.params = &chaincfg.TestnetParams
	}
	if cfg.Regtest {
		numNets++
		cfg.params = &chaincfg.RegtestParams
	}
	if cfg.Simnet {
		numNets++
		cfg.params = &chaincfg.SimnetParams
	}
	if numNets > 1 {
		return nil, errors.New("--testnet, --regtest and --simnet are " +
			"mutually exclusive")
	}

	if cfg.Blocks == 0 {
		return nil, errors.New("--numblocks must be positive")
	}
	if cfg.Spacing <= 0 {
		return nil, errors.New("--spacing must be positive")
	}
	if cfg.AnomalyHeight >= 0 && uint64(cfg.AnomalyHeight) >= cfg.Blocks {
		return nil, errors.Errorf("--anomaly-height %d is beyond the last "+
			"simulated block %d", cfg.AnomalyHeight, cfg.Blocks-1)
	}

	return cfg, nil
}
