package blocks

import (
	"github.com/forwardblock/go-forwardblock/metrics"
)

const namespace = "blocks"

var (
	decodeCount = metrics.NewCounter(
		"decode",
		namespace,
		"number of decoded blocks",
		[]string{"outcome"},
	)
	decodeOkCnt         = decodeCount.WithLabelValues("ok")
	decodeTooLargeCnt   = decodeCount.WithLabelValues("too_large")
	decodeIncompleteCnt = decodeCount.WithLabelValues("incomplete")

	decodeLatency = metrics.NewHistogramWithBuckets(
		"decode_duration_seconds",
		namespace,
		"duration of successful block decodes",
		[]string{},
		[]float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	).WithLabelValues()
)
