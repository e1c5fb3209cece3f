package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/traitkit/base/log"
)

const (
	// DdPort is the dogstatsd agent port
	DdPort = 8125

	// buffer 10 metrics before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}
	ddClient statsCli
)

type statsCli interface {
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// client returns the shared statsd client, or a LogClient when no
// datadog_host is configured.
func client() statsCli {
	initOnce.Do(func() {
		host := viper.GetString("datadog_host")
		if host == "" {
			ddClient = &LogClient{}
			return
		}
		addr := fmt.Sprintf("%s:%d", host, DdPort)
		log.Log().WithField("addr", addr).Info("connecting to datadog agent")
		cli, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("can't talk to datadog agent, metrics go to log")
			ddClient = &LogClient{}
			return
		}
		ddClient = cli
	})
	return ddClient
}
