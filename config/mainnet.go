package config

// MainnetConfig returns the parameters of the main network.
func MainnetConfig() Config {
	return Config{
		ChainID:          "c1cdd0e576ff61c8932342f7a264cccbf665a9aaa40ea9ca4e1343e6dc79ca45",
		ForkID:           0,
		MaxBlockSize:     4 << 20,
		MaxLedgerEntries: 64,
		MaxMemoLength:    32,
		MaxArbitraryData: 1024,
		NetworkHRP:       "fb",
		FlagActivations:  map[string]uint64{},
		SigCacheSize:     4096,
		LOGGING: LoggerConfig{
			Encoder: ConsoleLogEncoder,
			Level:   "info",
		},
	}
}
