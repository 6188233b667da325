// SPDX-License-Identifier: MIT
// Package: linework/builder
//
// impl_point.go - Point(): a lone vertex at the anchor.

package builder

import (
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

const methodPoint = "Point"

// Point returns a Constructor for one isolated vertex. With SelectVertices it
// serves as a radial origin for extrusion.
func Point() Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		ids, err := addPoints(m, cfg, methodPoint, []geom.Vec2{geom.V(0, 0)})
		if err != nil {
			return err
		}

		return link(m, cfg, methodPoint, ids, nil)
	}
}
