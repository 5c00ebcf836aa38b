package item

import (
	"go.uber.org/atomic"
)

type Item struct {
	Id          int
	AccessCount *atomic.Int64
}

func New(id int) *Item {
	return &Item{Id: id, AccessCount: atomic.NewInt64(0)}
}
