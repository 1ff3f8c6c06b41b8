package roadmap

import (
	"errors"

	"github.com/katalvlaran/dubnav/dubins"
	"github.com/katalvlaran/dubnav/geom"
)

// Sentinel errors for roadmap construction.
var (
	// ErrBadOrientationCount indicates Build was called with a
	// non-positive orientations-per-node count.
	ErrBadOrientationCount = errors.New("roadmap: orientations per node must be positive")

	// ErrStartUnreachable indicates that a start pose could not be wired
	// to any orientation of its k nearest nodes.
	ErrStartUnreachable = errors.New("roadmap: unable to connect start pose to k nearest nodes")

	// ErrGoalUnreachable indicates that a goal pose could not be wired
	// from any orientation of its k nearest nodes.
	ErrGoalUnreachable = errors.New("roadmap: unable to connect goal pose from k nearest nodes")
)

// NodeID identifies a positional node within its RoadMap.
type NodeID int

// PoseID identifies one orientation of one node: the node handle plus the
// stable index of the pose within the node's orientation list.
type PoseID struct {
	Node NodeID
	Pose int
}

// ConnID identifies one connection: the source pose handle plus the
// stable index of the connection in that pose's outgoing list.
type ConnID struct {
	From  PoseID
	Index int
}

// ConnKind discriminates the edge variant.
type ConnKind int

const (
	// ConnDubins is a regular edge backed by a Dubins curve.
	ConnDubins ConnKind = iota

	// ConnWait is a synthetic self-loop representing stationary dwell for
	// a fixed duration; it carries no curve.
	ConnWait
)

// Connection is a directed edge between two oriented poses.
type Connection struct {
	From PoseID
	To   PoseID
	Kind ConnKind
	Path dubins.Curve // zero-valued for ConnWait
	Wait float64      // dwell length for ConnWait, 0 otherwise
}

// Length returns the traversal cost of the edge: the curve length for a
// Dubins edge, the dwell duration for a wait edge.
func (c Connection) Length() float64 {
	if c.Kind == ConnWait {
		return c.Wait
	}

	return c.Path.L
}

// WaitConnection builds a self-loop wait edge of the given length at a
// pose. Discretization treats it as stationary sampling.
func WaitConnection(at PoseID, length float64) Connection {
	return Connection{From: at, To: at, Kind: ConnWait, Wait: length}
}

// Orientation is one oriented pose attached to a node. Its outgoing
// connections are owned here; incoming connections are non-owning
// back-references into other poses' outgoing lists.
type Orientation struct {
	id    PoseID
	theta float64
	out   []Connection
	in    []ConnID
}

// ID returns the pose handle.
func (o *Orientation) ID() PoseID { return o.id }

// Theta returns the pose angle, counter-clockwise from the x-axis.
func (o *Orientation) Theta() float64 { return o.theta }

// ConnCount returns the number of outgoing connections.
func (o *Orientation) ConnCount() int { return len(o.out) }

// Conn returns the outgoing connection at the given index.
func (o *Orientation) Conn(i int) *Connection { return &o.out[i] }

// IncomingCount returns the number of incoming connections.
func (o *Orientation) IncomingCount() int { return len(o.in) }

// Incoming returns the handle of the incoming connection at the given
// index.
func (o *Orientation) Incoming(i int) ConnID { return o.in[i] }

// Node is a positional node: a unique 2D position, the neighbor list of
// the base directed graph, and the orientation list of the built layer.
type Node struct {
	id    NodeID
	pos   geom.Point
	adj   []NodeID
	poses []Orientation
}

// ID returns the node handle.
func (n *Node) ID() NodeID { return n.id }

// Position returns the node position.
func (n *Node) Position() geom.Point { return n.pos }

// X returns the x-coordinate of the node.
func (n *Node) X() float64 { return n.pos.X }

// Y returns the y-coordinate of the node.
func (n *Node) Y() float64 { return n.pos.Y }

// NeighborCount returns the out-degree of the node in the base graph.
func (n *Node) NeighborCount() int { return len(n.adj) }

// Neighbor returns the i-th neighbor id in the base graph.
func (n *Node) Neighbor(i int) NodeID { return n.adj[i] }

// PoseCount returns the number of orientations attached to the node.
func (n *Node) PoseCount() int { return len(n.poses) }

// Pose returns the orientation at the given index.
func (n *Node) Pose(i int) *Orientation { return &n.poses[i] }
