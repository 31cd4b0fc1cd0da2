// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package geometry

import (
	"fmt"

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/stream"
)

// Geometries reconstructs the geometry of every feature in order.
func (v *Vector) Geometries() ([]Geometry, error) {
	c := converter{
		v:        v,
		geom:     1,
		part:     1,
		ring:     1,
		polygons: v.ContainsPolygon(),
	}

	// a count from the tile header alone does not size the result
	out := make([]Geometry, 0, min(v.NumGeometries, v.NumVertices()+1))
	for i := range v.NumGeometries {
		t := v.TypeAt(i)
		coords, err := c.next(t)
		if err != nil {
			return nil, fmt.Errorf("feature %d (%s): %w", i, t, err)
		}
		out = append(out, Geometry{Type: t, Coordinates: coords})
	}

	return out, nil
}

// converter walks the offset buffers with one cursor per buffer. Offset
// cursors start at 1 since entry 0 of every buffer is the leading zero.
type converter struct {
	v                *Vector
	geom, part, ring int
	vertex           int
	polygons         bool
}

func (c *converter) count(offsets []int32, cursor *int, name string) (int, error) {
	i := *cursor
	if i >= len(offsets) {
		return 0, fmt.Errorf("%w: geometry: %s offsets exhausted at %d", mlt.ErrCorrupt, name, i)
	}

	n := int(offsets[i]) - int(offsets[i-1])
	if n < 0 {
		return 0, fmt.Errorf("%w: geometry: %s offsets decrease at %d", mlt.ErrCorrupt, name, i)
	}
	*cursor++

	return n, nil
}

func (c *converter) next(t Type) ([][]Vertex, error) {
	topo := &c.v.Topology
	switch t {
	case Point:
		p, err := c.readVertex()
		if err != nil {
			return nil, err
		}
		if topo.GeometryOffsets != nil {
			c.geom++
		}
		if topo.PartOffsets != nil {
			c.part++
		}
		if topo.RingOffsets != nil {
			c.ring++
		}
		return [][]Vertex{{p}}, nil

	case MultiPoint:
		n, err := c.count(topo.GeometryOffsets, &c.geom, "geometry")
		if err != nil {
			return nil, err
		}
		if n > c.remaining() {
			return nil, fmt.Errorf("%w: geometry: %d points with %d vertices left", mlt.ErrCorrupt, n, c.remaining())
		}
		points := make([][]Vertex, n)
		for j := range points {
			p, err := c.readVertex()
			if err != nil {
				return nil, err
			}
			points[j] = []Vertex{p}
		}
		// each point holds an implicit entry in the lower buffers
		if topo.PartOffsets != nil {
			c.part += n
		}
		if topo.RingOffsets != nil {
			c.ring += n
		}
		return points, nil

	case LineString:
		line, err := c.lineString()
		if err != nil {
			return nil, err
		}
		if topo.GeometryOffsets != nil {
			c.geom++
		}
		return [][]Vertex{line}, nil

	case Polygon:
		rings, err := c.polygon(nil)
		if err != nil {
			return nil, err
		}
		if topo.GeometryOffsets != nil {
			c.geom++
		}
		return rings, nil

	case MultiLineString:
		n, err := c.count(topo.GeometryOffsets, &c.geom, "geometry")
		if err != nil {
			return nil, err
		}
		var lines [][]Vertex
		for range n {
			line, err := c.lineString()
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
		return lines, nil

	case MultiPolygon:
		n, err := c.count(topo.GeometryOffsets, &c.geom, "geometry")
		if err != nil {
			return nil, err
		}
		var rings [][]Vertex
		for range n {
			if rings, err = c.polygon(rings); err != nil {
				return nil, err
			}
		}
		return rings, nil
	}

	return nil, fmt.Errorf("%w: geometry: unknown geometry type %d", mlt.ErrCorrupt, t)
}

// lineString reads one line. Columns containing polygons store line
// vertex counts in the ring offsets.
func (c *converter) lineString() ([]Vertex, error) {
	topo := &c.v.Topology

	var (
		n   int
		err error
	)
	if c.polygons {
		n, err = c.count(topo.RingOffsets, &c.ring, "ring")
	} else {
		n, err = c.count(topo.PartOffsets, &c.part, "part")
	}
	if err != nil {
		return nil, err
	}
	c.part++

	return c.readLine(n, false)
}

// polygon appends the shell and holes of one polygon to rings.
func (c *converter) polygon(rings [][]Vertex) ([][]Vertex, error) {
	topo := &c.v.Topology
	numRings, err := c.count(topo.PartOffsets, &c.part, "part")
	if err != nil {
		return nil, err
	}
	if numRings == 0 {
		return nil, fmt.Errorf("%w: geometry: polygon without rings", mlt.ErrCorrupt)
	}

	for range numRings {
		n, err := c.count(topo.RingOffsets, &c.ring, "ring")
		if err != nil {
			return nil, err
		}
		ring, err := c.readLine(n, true)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}

	return rings, nil
}

func (c *converter) remaining() int {
	if c.v.VertexKind == VertexPlain {
		return (len(c.v.VertexBuffer) - c.vertex) / 2
	}
	return len(c.v.VertexOffsets) - c.vertex
}

func (c *converter) readLine(n int, closed bool) ([]Vertex, error) {
	if n > c.remaining() {
		return nil, fmt.Errorf("%w: geometry: line of %d vertices with %d left",
			mlt.ErrCorrupt, n, c.remaining())
	}

	line := make([]Vertex, n, n+1)
	for i := range line {
		var err error
		if line[i], err = c.readVertex(); err != nil {
			return nil, err
		}
	}
	if closed && n > 0 {
		line = append(line, line[0])
	}

	return line, nil
}

func (c *converter) readVertex() (Vertex, error) {
	v := c.v
	if v.VertexKind == VertexPlain {
		i := c.vertex
		if i+1 >= len(v.VertexBuffer) {
			return Vertex{}, fmt.Errorf("%w: geometry: vertex buffer exhausted at %d", mlt.ErrCorrupt, i/2)
		}
		c.vertex += 2
		return Vertex{X: v.VertexBuffer[i], Y: v.VertexBuffer[i+1]}, nil
	}

	if c.vertex >= len(v.VertexOffsets) {
		return Vertex{}, fmt.Errorf("%w: geometry: vertex offsets exhausted at %d", mlt.ErrCorrupt, c.vertex)
	}
	idx := int(uint32(v.VertexOffsets[c.vertex]))
	c.vertex++

	if v.VertexKind == VertexMortonDictionary {
		if idx >= len(v.MortonCodes) {
			return Vertex{}, fmt.Errorf("%w: geometry: vertex offset %d outside %d morton codes",
				mlt.ErrCorrupt, idx, len(v.MortonCodes))
		}
		x, y := stream.DecodeMorton(v.MortonCodes[idx], v.Morton.NumBits, v.Morton.CoordinateShift)
		return Vertex{X: x, Y: y}, nil
	}

	if 2*idx+1 >= len(v.VertexBuffer) {
		return Vertex{}, fmt.Errorf("%w: geometry: vertex offset %d outside %d vertices",
			mlt.ErrCorrupt, idx, len(v.VertexBuffer)/2)
	}
	return Vertex{X: v.VertexBuffer[2*idx], Y: v.VertexBuffer[2*idx+1]}, nil
}
