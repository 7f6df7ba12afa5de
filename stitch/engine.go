package stitch

import (
	"math"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/geom"
)

// DefaultThreshold is the distance within which two end points are welded.
const DefaultThreshold = 1e-4

// Option configures an Engine.
type Option func(*Engine)

// WithThreshold sets the snapping distance. Values that are not positive
// are ignored.
func WithThreshold(t float64) Option {
	return func(e *Engine) {
		if t > 0 {
			e.threshold = t
		}
	}
}

// none marks a missing successor.
const none = -1

type node struct {
	seg  Segment
	next int
}

// chain is a run of arena nodes from head to tail. In a closed chain the
// tail's successor is the head.
type chain struct {
	head, tail int
}

// Engine accumulates segments and welds them into chains.
type Engine struct {
	threshold float64

	nodes  []node
	open   []chain
	closed []chain
	frozen []chain
}

// New returns an empty engine.
func New(opts ...Option) *Engine {
	e := &Engine{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Threshold returns the snapping distance.
func (e *Engine) Threshold() float64 { return e.threshold }

// AddLine adds a straight segment.
func (e *Engine) AddLine(start, end geom.Vector2) {
	e.Add(LineSegment(start, end))
}

// AddArc adds an arc segment.
func (e *Engine) AddArc(center geom.Vector2, radius, startAngle, endAngle float64, counterClockwise bool) {
	e.Add(ArcSegment(center, radius, startAngle, endAngle, counterClockwise))
}

// Add welds s into the open chains.
//
// Lines shorter than the threshold and arcs without sweep are dropped. An
// arc whose ends meet is a full circle and is added as two half arcs so
// that no chain ever holds a segment that starts where it ends.
func (e *Engine) Add(s Segment) {
	switch s.Kind {
	case Line:
		if e.near(s.Start, s.End) {
			return
		}
	case Arc:
		sweep := s.Sweep()
		if sweep == 0 || s.Radius <= 0 {
			return
		}
		if e.near(s.Start, s.End) {
			if math.Abs(sweep) < math.Pi {
				return
			}
			first, second := s.split()
			e.Add(first)
			e.Add(second)
			return
		}
	}
	e.nodes = append(e.nodes, node{seg: s, next: none})
	i := len(e.nodes) - 1
	e.join(chain{head: i, tail: i})
}

// join scans the open chains for one c can be welded to. A successful weld
// takes the grown chain out of the open set and scans again with it, until
// nothing matches or the chain closes.
func (e *Engine) join(c chain) {
	for {
		j, ok := e.weld(&c)
		if !ok {
			e.open = append(e.open, c)
			return
		}
		grown := e.open[j]
		e.open = append(e.open[:j], e.open[j+1:]...)
		if e.near(e.headPoint(grown), e.tailPoint(grown)) {
			e.nodes[grown.tail].next = grown.head
			e.closed = append(e.closed, grown)
			sketch.Logger().Debug("stitch: chain closed",
				"segments", e.length(grown),
				"closed", len(e.closed))
			return
		}
		c = grown
	}
}

// weld joins c to the first open chain with a matching end and returns that
// chain's index.
func (e *Engine) weld(c *chain) (int, bool) {
	for j := range e.open {
		ex := &e.open[j]
		switch {
		case e.near(e.tailPoint(*ex), e.headPoint(*c)):
			e.appendTo(ex, *c)
		case e.near(e.headPoint(*ex), e.tailPoint(*c)):
			e.prependTo(ex, *c)
		case e.near(e.headPoint(*ex), e.headPoint(*c)):
			e.flip(c)
			e.prependTo(ex, *c)
		case e.near(e.tailPoint(*ex), e.tailPoint(*c)):
			e.flip(c)
			e.appendTo(ex, *c)
		default:
			continue
		}
		return j, true
	}
	return 0, false
}

func (e *Engine) appendTo(ex *chain, c chain) {
	e.nodes[ex.tail].next = c.head
	ex.tail = c.tail
}

func (e *Engine) prependTo(ex *chain, c chain) {
	e.nodes[c.tail].next = ex.head
	ex.head = c.head
}

// flip reverses an open chain in place.
func (e *Engine) flip(c *chain) {
	prev := none
	for i := c.head; ; {
		next := e.nodes[i].next
		e.nodes[i].next = prev
		e.nodes[i].seg = e.nodes[i].seg.Reversed()
		if i == c.tail {
			break
		}
		prev, i = i, next
	}
	c.head, c.tail = c.tail, c.head
}

func (e *Engine) headPoint(c chain) geom.Vector2 { return e.nodes[c.head].seg.Start }
func (e *Engine) tailPoint(c chain) geom.Vector2 { return e.nodes[c.tail].seg.End }

func (e *Engine) near(a, b geom.Vector2) bool {
	return geom.Distance2(a, b) <= e.threshold
}

// segments walks c from head to tail.
func (e *Engine) segments(c chain) []Segment {
	var out []Segment
	for i := c.head; ; i = e.nodes[i].next {
		out = append(out, e.nodes[i].seg)
		if i == c.tail {
			return out
		}
	}
}

func (e *Engine) length(c chain) int {
	n := 1
	for i := c.head; i != c.tail; i = e.nodes[i].next {
		n++
	}
	return n
}

// Freeze moves every open chain out of reach of later segments. Frozen
// chains are still exported as open polylines.
func (e *Engine) Freeze() {
	e.frozen = append(e.frozen, e.open...)
	e.open = nil
}

// OpenCount returns the number of open chains still accepting segments.
func (e *Engine) OpenCount() int { return len(e.open) }

// ClosedCount returns the number of closed chains.
func (e *Engine) ClosedCount() int { return len(e.closed) }

// FrozenCount returns the number of frozen chains.
func (e *Engine) FrozenCount() int { return len(e.frozen) }

// Len returns the number of segments held in all chains.
func (e *Engine) Len() int { return len(e.nodes) }

// Chain is an exported snapshot of a chain.
type Chain struct {
	Segments []Segment
	Closed   bool
	Frozen   bool
}

// Chains returns the closed chains, then the open ones, then the frozen
// ones, each group in the order the chains were created or closed.
func (e *Engine) Chains() []Chain {
	out := make([]Chain, 0, len(e.closed)+len(e.open)+len(e.frozen))
	for _, c := range e.closed {
		out = append(out, Chain{Segments: e.segments(c), Closed: true})
	}
	for _, c := range e.open {
		out = append(out, Chain{Segments: e.segments(c)})
	}
	for _, c := range e.frozen {
		out = append(out, Chain{Segments: e.segments(c), Frozen: true})
	}
	return out
}

// Vertex is a polyline vertex. Bulge describes the segment that starts at
// the vertex: zero for a line, tan(sweep/4) for an arc.
type Vertex struct {
	Point geom.Vector2
	Bulge float64
}

// Polyline is a chain flattened to bulge-encoded vertices.
type Polyline struct {
	Vertices []Vertex
	Closed   bool
}

// Polyline converts the chain. Closed polylines do not repeat their first
// vertex; open ones end with the last segment's end point.
func (c Chain) Polyline() Polyline {
	p := Polyline{Closed: c.Closed, Vertices: make([]Vertex, 0, len(c.Segments)+1)}
	for _, s := range c.Segments {
		p.Vertices = append(p.Vertices, Vertex{Point: s.Start, Bulge: s.Bulge()})
	}
	if !c.Closed && len(c.Segments) > 0 {
		p.Vertices = append(p.Vertices, Vertex{Point: c.Segments[len(c.Segments)-1].End})
	}
	return p
}
