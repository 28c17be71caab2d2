package txs

import (
	"github.com/forwardblock/go-forwardblock/metrics"
)

const namespace = "txs"

var (
	checkCount = metrics.NewCounter(
		"check",
		namespace,
		"number of transactions run through the checks",
		[]string{"outcome"},
	)
	checkOkCnt         = checkCount.WithLabelValues("ok")
	insufficientSigCnt = checkCount.WithLabelValues("insufficient_signatures")
	flagDisabledCnt    = checkCount.WithLabelValues("flag_disabled")
	receiptFailedCnt   = checkCount.WithLabelValues("receipt_failed")

	checkDuration = metrics.NewHistogram(
		"check_duration_seconds",
		namespace,
		"duration of transaction checks",
		[]string{},
	)
	checkLatency = checkDuration.WithLabelValues()
)
