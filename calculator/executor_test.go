package calculator

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/ini.v1"
)

func TestExecutorSplit(t *testing.T) {
	for _, tc := range []struct {
		workers, first, last int
	}{
		{4, 0, 10}, {2, 0, 7}, {4, 0, 3}, {3, 5, 50}, {8, 0, 8}, {1, 0, 5}, {4, 3, 3},
	} {
		e := newExecutor(tc.workers)
		tasks := e.split(tc.first, tc.last)
		next := tc.first
		for _, ts := range tasks {
			require.Equal(t, next, ts.start, "%+v", tc)
			require.Greater(t, ts.end, ts.start, "%+v", tc)
			next = ts.end
		}
		require.Equal(t, tc.last, next, "%+v", tc)
	}
}

func TestExecutorDispatchTask(t *testing.T) {
	for _, workers := range []int{1, 3, 16} {
		e := newExecutor(workers)
		visited := make([]int32, 101)
		var calls int32
		e.dispatchTask(0, len(visited), func(ts task) {
			atomic.AddInt32(&calls, 1)
			for i := ts.start; i < ts.end; i++ {
				atomic.AddInt32(&visited[i], 1)
			}
		})
		for i, v := range visited {
			require.Equal(t, int32(1), v, "workers %d row %d", workers, i)
		}
		require.Greater(t, calls, int32(0))
	}
}

func TestLoadConfig(t *testing.T) {
	file, err := ini.Load([]byte("[calculator]\nWorkers = 6\nLeakTolerance = 1e-5\n"))
	require.NoError(t, err)
	cfg := LoadConfig(file)
	require.Equal(t, 6, cfg.Workers)
	require.Equal(t, 1e-5, cfg.LeakTolerance)

	require.Equal(t, DefaultConfig, LoadConfig(ini.Empty()))
}

func TestResultLeak(t *testing.T) {
	res := &Result{Method: Source, VInf: 2, Perimeter: 5, Accuracy: 0.1}
	require.InDelta(t, 0.01, res.RelativeLeak(), 1e-15)
	require.NoError(t, res.Leak(0.02))

	err := res.Leak(1e-3)
	var leak *LeakError
	require.ErrorAs(t, err, &leak)
	require.Equal(t, 0.1, leak.Accuracy)

	res.Method = Vortex
	require.NoError(t, res.Leak(1e-3))
}

func TestSolveSingular(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 2, 4})
	_, err := solve(a, mat.NewVecDense(2, []float64{1, 2}))
	var singular *SingularSystemError
	require.ErrorAs(t, err, &singular)
	require.Contains(t, singular.Error(), "singular system")
}

func TestAlphaRange(t *testing.T) {
	angles, err := AlphaRange(-4, 4, 2, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{-4, -2, 0, 2, 4}, angles)

	angles, err = AlphaRange(0, 1, 0.1, 0)
	require.NoError(t, err)
	require.Len(t, angles, 11)

	angles, err = AlphaRange(3, 3, 1, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, angles)

	for _, tc := range []struct{ min, max, step float64 }{
		{0, 4, 0}, {0, 4, -1}, {4, 0, 1},
	} {
		_, err := AlphaRange(tc.min, tc.max, tc.step, 0)
		require.ErrorIs(t, err, ErrInvalidInput, "%+v", tc)
	}
	_, err = AlphaRange(0, 100, 1, 10)
	require.ErrorIs(t, err, ErrInvalidInput)
}
