package concurrent

import "lintang/flightpath/pkg/datastructure"

// SavePOIJobItem all POIs of one h3 cell.
type SavePOIJobItem struct {
	KeyStr string
	ValArr []datastructure.POI
}

type JobI interface {
	SavePOIJobItem
}

type Job[T JobI] struct {
	ID      int
	JobItem T
}
type JobFunc[T JobI, G any] func(job T) G
