package metadata

import "iter"

// RidList represents a contiguous range of row ids, the zero value is empty
type RidList struct {
	Start uint32
	Count uint32
}

// NewRidList creates a range of count rids starting at start
func NewRidList(start, count uint32) RidList {
	if count == 0 {
		return RidList{}
	}
	return RidList{Start: start, Count: count}
}

// Len returns number of rids
func (l RidList) Len() int {
	return int(l.Count)
}

// All yields rids in ascending order
func (l RidList) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := uint32(0); i < l.Count; i++ {
			if !yield(l.Start + i) {
				return
			}
		}
	}
}
