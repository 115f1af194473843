// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum of
// the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not complete, e.g.
// a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadMapping indicates a relabeling that is not injective or produces an
// empty name.
var ErrBadMapping = errors.New("builder: bad relabel mapping")
