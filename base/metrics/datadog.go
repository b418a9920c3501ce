package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/airdropper/base/log"
)

const (
	ddPort = 8125
	// buffer 10 metrics before sending to statsd
	bufferMetrics = 10
	ddRate        = 1
)

var (
	initOnce = sync.Once{}
	ddClient statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// initDDClient connects to the datadog agent, or logs metrics when no agent is configured
func initDDClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		log.Log().Info("datadog_host is empty, metrics go to the log")
		ddClient = &LogClient{}
		return
	}

	addr := fmt.Sprintf("%s:%d", host, ddPort)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	cli, err := statsd.New(addr, statsd.WithMaxMessagesPerPayload(bufferMetrics))
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent")
		ddClient = &LogClient{}
		return
	}
	ddClient = cli
}

type ddMetrics struct {
	ddTags []string
}

func (dm *ddMetrics) tags(tags []string) []string {
	res := make([]string, 0, len(dm.ddTags)+len(tags)/2)
	res = append(res, dm.ddTags...)
	return append(res, parseTag(tags)...)
}

// BumpAvg is recorded as a gauge, datadog has no average-only type
func (dm *ddMetrics) BumpAvg(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Gauge(key, val, dm.tags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpAvg"}).Error("Bump fail")
	}
}

func (dm *ddMetrics) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Count(key, int64(val), dm.tags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

func (dm *ddMetrics) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Histogram(key, val, dm.tags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

func (dm *ddMetrics) BumpTime(key string, tags ...string) Ender {
	initOnce.Do(initDDClient)
	return &ddTimeTracker{
		start: time.Now(),
		key:   key,
		tags:  dm.tags(tags),
	}
}

// parseTag turns key/value pairs into datadog "key:value" tags, a dangling key is dropped
func parseTag(tags []string) []string {
	arr := make([]string, 0, len(tags)/2)
	for i := 0; i+1 < len(tags); i += 2 {
		arr = append(arr, tags[i]+":"+tags[i+1])
	}
	return arr
}

type ddTimeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (dt *ddTimeTracker) End() {
	dur := float64(time.Since(dt.start)) / float64(time.Millisecond)
	if err := ddClient.TimeInMilliseconds(dt.key, dur, dt.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": dt.key, "val": dur, "func": "BumpTime"}).Error("Bump fail")
	}
}
