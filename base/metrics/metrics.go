/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/nftcard/base/env"
	"github.com/x-xyz/nftcard/base/log"
)

// Ender provides interface for BumpTime
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

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		client:  defaultClient(),
		ddTags: []string{
			// using host removes all tags associated with host
			// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
			"host:",
			"pod:" + env.PodName(),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

// Metrics prefixes keys with the package name and forwards them to a statsd client
type Metrics struct {
	pkgName string
	client  statsCli
	ddTags  []string
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

func (mt *Metrics) tags(tags []string) []string {
	res := make([]string, 0, len(mt.ddTags)+len(tags)/2)
	res = append(res, mt.ddTags...)
	return append(res, parseTag(tags)...)
}

// recoverBump keeps a malformed tag list from taking the caller down
func (mt *Metrics) recoverBump(key string, tags []string) {
	if err := recover(); err != nil {
		log.Log().WithFields(log.Fields{
			"err":  err,
			"key":  mt.key(key),
			"tags": strings.Join(tags, "#"),
		}).Error("bump panic")
	}
}

func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverBump(key, tags)
	if err := mt.client.Gauge(mt.key(key), val, mt.tags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpAvg"}).Error("Bump fail")
	}
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump(key, tags)
	if err := mt.client.Count(mt.key(key), int64(val), mt.tags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump(key, tags)
	if err := mt.client.Histogram(mt.key(key), val, mt.tags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

// BumpTime starts a timer and returns a value on which End() records the
// elapsed milliseconds:
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		end: func(ms float64) {
			defer mt.recoverBump(key, tags)
			if err := mt.client.TimeInMilliseconds(mt.key(key), ms, mt.tags(tags), ddRate); err != nil {
				log.Log().WithFields(log.Fields{"err": err, "key": key, "val": ms, "func": "BumpTime"}).Error("Bump fail")
			}
		},
	}
}

type timeTracker struct {
	start time.Time
	end   func(ms float64)
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	t.end(float64(d) / float64(time.Millisecond))
}

func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}
