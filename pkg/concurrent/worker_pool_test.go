package concurrent_test

import (
	"testing"

	"lintang/flightpath/pkg/concurrent"
	"lintang/flightpath/pkg/datastructure"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	jobs := []concurrent.SavePOIJobItem{
		{KeyStr: "a", ValArr: make([]datastructure.POI, 1)},
		{KeyStr: "b", ValArr: make([]datastructure.POI, 2)},
		{KeyStr: "c", ValArr: make([]datastructure.POI, 3)},
	}
	wp := concurrent.NewWorkerPool[concurrent.SavePOIJobItem, int](2, len(jobs))
	for _, j := range jobs {
		wp.AddJob(j)
	}
	wp.Close()

	wp.Start(func(job concurrent.SavePOIJobItem) int {
		return len(job.ValArr)
	})
	wp.Wait()

	total := 0
	for n := range wp.CollectResults() {
		total += n
	}
	assert.Equal(t, 6, total)
}
