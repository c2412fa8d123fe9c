package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/techscreener/pkg/logger"
)

type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestRefreshJob(t *testing.T) {
	r := &fakeRefresher{}
	job := NewRefreshJob(r, "*/5 * * * *", logger.Nop())

	assert.Equal(t, "screener_refresh", job.Name())
	assert.Equal(t, "*/5 * * * *", job.Schedule())
	assert.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 1, r.calls)

	r.err = errors.New("backend down")
	assert.EqualError(t, job.Run(context.Background()), "backend down")
}
