package presets

import (
	"github.com/forwardblock/go-forwardblock/config"
)

func init() {
	register("testnet", testnet())
}

func testnet() config.Config {
	conf := config.DefaultConfig()
	conf.ChainID = "726e4e074bc065c9247dc0b73e7989c98b8ccf4c50a658906e25380b47dffa47"
	conf.NetworkHRP = "fbtest"
	conf.MaxBlockSize = 8 << 20
	return conf
}
