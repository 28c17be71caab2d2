package accounts

import (
	"github.com/forwardblock/go-forwardblock/metrics"
)

var registeredAccounts = metrics.NewGauge(
	"registered",
	"accounts",
	"number of accounts known to the registry",
	[]string{},
).WithLabelValues()
