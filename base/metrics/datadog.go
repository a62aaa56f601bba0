package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftcard/base/log"
)

const (
	// DdPort is the dogstatsd agent port
	DdPort = 8125

	// ddRate is the rate to pass metrics to datadog agent. 1 means always
	ddRate = 1
	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}
	client   statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// defaultClient dials the datadog agent once. Without a configured
// datadog_host the metrics are written to the debug log instead.
func defaultClient() statsCli {
	initOnce.Do(func() {
		host := viper.GetString("datadog_host")
		if host == "" {
			log.Log().Info("datadog_host not set, metrics go to log")
			client = &LogClient{}
			return
		}

		addr := fmt.Sprintf("%s:%d", host, DdPort)
		log.Log().WithField("addr", addr).Info("connecting to datadog agent")
		c, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent, metrics go to log")
			client = &LogClient{}
			return
		}
		client = c
	})
	return client
}
