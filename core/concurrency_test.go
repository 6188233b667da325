// Package core_test verifies thread-safety of core.Map under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

// TestConcurrentAddEdge ensures that concurrent vertex and edge creation
// produces unique IDs and a consistent incidence set.
func TestConcurrentAddEdge(t *testing.T) {
	m := core.NewMap()
	hub, err := m.AddVertex(geom.V(0, 0))
	require.NoError(t, err)

	const num = 200
	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			v, err := m.AddVertex(geom.V(float64(i+1), 0))
			if err != nil {
				errs <- err
				return
			}
			if _, err = m.AddEdge(hub, v); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	inc, err := m.IncidentEdges(hub)
	require.NoError(t, err)
	require.Len(t, inc, num)
}

// TestConcurrentReadersDuringSplit runs readers alongside splits.
func TestConcurrentReadersDuringSplit(t *testing.T) {
	m := core.NewMap()
	a, _ := m.AddVertex(geom.V(0, 0))
	b, _ := m.AddVertex(geom.V(100, 0))
	e, err := m.AddEdge(a, b)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		cur := e
		for i := 0; i < 50; i++ {
			_, ne, err := m.SplitEdge(cur, geom.V(float64(i+1), 0))
			if err != nil {
				return
			}
			cur = ne
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = m.Edges()
			_, _ = m.IncidentEdges(a)
		}
	}()
	wg.Wait()

	require.Equal(t, 51, m.EdgeCount())
}
