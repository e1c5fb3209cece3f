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
	c := WithValue(bg, "foo", "bar")
	ts.Equal("bar", c.Value("foo"))
}

func (ts *testsuite) TestWithLogField() {
	bg := Background()
	c := WithLogField(bg, "acquisitionId", "abc")
	ts.Nil(c.Value("acquisitionId"))
}

func (ts *testsuite) TestFrom() {
	type key struct{}
	plain := context.WithValue(context.Background(), key{}, 1)
	c := From(plain)
	ts.Equal(1, c.Value(key{}))

	wrapped := WithValue(Background(), "requestID", "r1")
	ts.Equal(wrapped, From(wrapped))
}

func (ts *testsuite) TestWithCancel() {
	c, cancel := WithCancel(Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	select {
	case <-c.Done():
	case <-time.After(time.Second):
		ts.Fail("context not canceled")
	}
	ts.Equal(context.Canceled, c.Err())
}

func (ts *testsuite) TestTimeout() {
	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()
	select {
	case <-c.Done():
	case <-time.After(time.Second):
		ts.Fail("context did not time out")
	}
	ts.Equal("context deadline exceeded", c.Err().Error())
}
