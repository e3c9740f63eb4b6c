package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"viewchange/internal/config"
	"viewchange/internal/ledger"
	"viewchange/internal/node"
)

// The ledgers every node tracks, in fixed registration order.
var defaultLedgers = []ledger.Summary{
	{LedgerID: 0}, // pool ledger
	{LedgerID: 1}, // config ledger
	{LedgerID: 2}, // domain ledger
}

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		nodeName   = flag.String("node-name", "", "this node's name (must appear in the peer roster)")
		listenAddr = flag.String("listen", "", "listen address, e.g. :50051")
		peersStr   = flag.String("peers", "", "peer roster in rank order: name1=addr1,name2=addr2,...")
		f          = flag.Int("f", 0, "fault-tolerance bound (0 = derive from roster size)")
		instances  = flag.Int("instances", 0, "number of replica groups including master (0 = derive f+1)")
		startView  = flag.Uint64("start-view", 0, "trigger a view change to this view once the node is up (0 = wait for external trigger)")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}
	if *nodeName != "" {
		cfg.NodeName = *nodeName
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *peersStr != "" {
		peers, err := config.ParsePeers(*peersStr)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to parse peers")
		}
		cfg.Peers = peers
	}
	if *f > 0 {
		cfg.F = *f
	}
	if *instances > 0 {
		cfg.Instances = *instances
	}
	cfg.ApplyDefaults()

	n, err := node.NewNode(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create node")
	}
	for _, s := range defaultLedgers {
		if err := n.RegisterLedger(s); err != nil {
			log.Fatal().Err(err).Msg("failed to register ledger")
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		n.Stop()
	}()

	if *startView > 0 {
		go func() {
			if err := n.StartViewChange(*startView); err != nil {
				log.Warn().Err(err).Msg("initial view change failed")
			}
		}()
	}

	if err := n.Start(); err != nil {
		log.Fatal().Err(err).Msg("node exited")
	}
}
