package utils

import (
	"sync"

	"github.com/ethaniccc/float32-cube/cube"
)

var boxListPool = sync.Pool{
	New: func() any {
		s := make([]cube.BBox, 0, 16)
		return &s
	},
}

// GetBoxList retrieves an empty box slice from the pool.
func GetBoxList() *[]cube.BBox {
	list := boxListPool.Get().(*[]cube.BBox)
	*list = (*list)[:0]
	return list
}

// PutBoxList returns a box slice to the pool. The slice must not be used afterwards.
func PutBoxList(list *[]cube.BBox) {
	if list == nil {
		return
	}
	*list = (*list)[:0]
	boxListPool.Put(list)
}
