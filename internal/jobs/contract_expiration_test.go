package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpirer struct {
	n     int64
	err   error
	calls int
}

func (f *fakeExpirer) DeactivateExpired(context.Context) (int64, error) {
	f.calls++
	return f.n, f.err
}

func TestContractExpirationJob_RunOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	exp := &fakeExpirer{n: 3}
	job := NewContractExpirationJob(exp, "", nil, reg)

	n, err := job.RunOnce(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.Equal(t, 1, exp.calls)
	assert.Equal(t, 3.0, testutil.ToFloat64(job.deactivated))
	assert.Equal(t, 1.0, testutil.ToFloat64(job.runs.WithLabelValues("ok")))
}

func TestContractExpirationJob_RunOnceError(t *testing.T) {
	exp := &fakeExpirer{err: errors.New("db down")}
	job := NewContractExpirationJob(exp, "", nil, nil)

	_, err := job.RunOnce(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(job.runs.WithLabelValues("error")))
	assert.Zero(t, testutil.ToFloat64(job.deactivated))
}

func TestContractExpirationJob_StartRejectsBadSpec(t *testing.T) {
	job := NewContractExpirationJob(&fakeExpirer{}, "not a cron", nil, nil)
	assert.Error(t, job.Start())
	job.Stop()
}

func TestContractExpirationJob_StartStop(t *testing.T) {
	job := NewContractExpirationJob(&fakeExpirer{}, DefaultContractExpirationSpec, nil, nil)
	require.NoError(t, job.Start())
	job.Stop()
}
