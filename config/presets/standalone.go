package presets

import (
	"github.com/forwardblock/go-forwardblock/config"
)

func init() {
	register("standalone", standalone())
}

// standalone is used for local single node setups and tests.
func standalone() config.Config {
	conf := config.DefaultConfig()
	conf.ChainID = "0000000000000000000000000000000000000000000000000000000000000001"
	conf.NetworkHRP = "fbdev"
	conf.Debug = true
	conf.SigCacheSize = 128
	conf.LOGGING.Level = "debug"
	return conf
}
