/*
Package metrics wraps datadog-go to record service metrics.
Naming convention:
- Internal process time: *.time
- Error: *.err
- Counter of handled items: *.count
*/
package metrics

import (
	"github.com/spf13/viper"
	"github.com/x-xyz/airdropper/base/env"
)

// Ender is returned by BumpTime, call End to record the elapsed time
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metrics client whose keys are prefixed by pkgName
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		client: &ddMetrics{
			ddTags: []string{
				// an empty host tag drops the host-level tags datadog attaches
				"host:",
				"pod:" + env.PodName(),
				"env:" + viper.GetString("env_name"),
				"app:" + viper.GetString("app_name"),
			},
		},
	}
}

// Metrics prefixes keys with the package name before handing them to datadog
type Metrics struct {
	pkgName string
	client  *ddMetrics
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.client.BumpAvg(mt.key(key), val, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.client.BumpSum(mt.key(key), val, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.client.BumpHistogram(mt.key(key), val, tags...)
}

// BumpTime starts a timer, the elapsed time is recorded when End is called:
//
//	defer m.BumpTime("plan.time").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return mt.client.BumpTime(mt.key(key), tags...)
}
