package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "requestID", "abc")
	ts.Equal("abc", ctx.Value("requestID"))
	ts.Nil(bg.Value("requestID"))
}

func (ts *testsuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"chainId": 1,
		"token":   "0x0",
	})
	ts.Equal(1, ctx.Value("chainId"))
	ts.Equal("0x0", ctx.Value("token"))
}

func (ts *testsuite) TestWithTimeout() {
	ctx, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		ts.Fail("context should time out")
	}
	ts.ErrorIs(ctx.Err(), context.DeadlineExceeded)
}
