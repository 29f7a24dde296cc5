// Package com holds the scoped COM apartment guard and the release-and-null
// helper shared by every platform call path.
package com

// Releasable is satisfied by any go-ole or go-wca interface pointer.
type Releasable interface {
	comparable
	Release() int32
}

// Release releases the referenced COM interface pointer exactly once and
// clears it, so releasing an already-cleared pointer is a no-op.
func Release[T Releasable](pp *T) {
	var zero T
	if pp == nil || *pp == zero {
		return
	}
	(*pp).Release()
	*pp = zero
}
