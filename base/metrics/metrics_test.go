package metrics

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type metricsSuite struct {
	suite.Suite
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(metricsSuite))
}

func (s *metricsSuite) TestParseTag() {
	s.Equal([]string{"method:POST", "path:/airdrop/plan"}, parseTag([]string{"method", "POST", "path", "/airdrop/plan"}))
	s.Equal([]string{"method:GET"}, parseTag([]string{"method", "GET", "dangling"}))
	s.Empty(parseTag(nil))
}

func (s *metricsSuite) TestBumpWithoutAgent() {
	m := New("test")
	s.NotPanics(func() {
		m.BumpSum("plan.count", 1, "chainId", "1")
		m.BumpAvg("plan.transfers", 3)
		m.BumpHistogram("plan.total", 600)
		m.BumpTime("plan.time").End()
	})
	_, ok := ddClient.(*LogClient)
	s.True(ok)
}
