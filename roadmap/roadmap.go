package roadmap

import (
	"math"
	"sort"

	"github.com/katalvlaran/dubnav/dubins"
	"github.com/katalvlaran/dubnav/geom"
)

// RoadMap owns the node arena. The zero value is ready to use.
type RoadMap struct {
	nodes []Node
}

// New returns an empty RoadMap.
func New() *RoadMap { return &RoadMap{} }

// NodeCount returns the number of positional nodes.
func (rm *RoadMap) NodeCount() int { return len(rm.nodes) }

// Node returns the node with the given id.
func (rm *RoadMap) Node(id NodeID) *Node { return &rm.nodes[id] }

// Pose resolves a pose handle to its orientation.
func (rm *RoadMap) Pose(id PoseID) *Orientation { return rm.nodes[id.Node].Pose(id.Pose) }

// Conn resolves a connection handle.
func (rm *RoadMap) Conn(id ConnID) *Connection { return rm.Pose(id.From).Conn(id.Index) }

// AddNode inserts a positional node, deduplicating on exact position
// equality: if a node already sits at pos its id is returned unchanged.
// Complexity: O(n) — node counts here are small enough that a hash index
// would not pay for itself.
func (rm *RoadMap) AddNode(pos geom.Point) NodeID {
	for i := range rm.nodes {
		if rm.nodes[i].pos == pos {
			return rm.nodes[i].id
		}
	}

	id := NodeID(len(rm.nodes))
	rm.nodes = append(rm.nodes, Node{id: id, pos: pos})

	return id
}

// Connect adds a directed base-graph edge from one node to another.
// Self-loops and duplicates are rejected; returns true when a new edge
// was created.
func (rm *RoadMap) Connect(from, to NodeID) bool {
	if from == to {
		return false
	}
	n := &rm.nodes[from]
	for _, id := range n.adj {
		if id == to {
			return false
		}
	}
	n.adj = append(n.adj, to)

	return true
}

// Disconnect removes a directed base-graph edge; returns true when an
// existing edge was found and removed.
func (rm *RoadMap) Disconnect(from, to NodeID) bool {
	n := &rm.nodes[from]
	for i, id := range n.adj {
		if id == to {
			n.adj = append(n.adj[:i], n.adj[i+1:]...)

			return true
		}
	}

	return false
}

// connectPoses tries to wire two orientations with the shortest feasible
// Dubins curve. On success the connection is appended to the source's
// outgoing list and a back-reference to the destination's incoming list.
func (rm *RoadMap) connectPoses(from, to PoseID, kmax float64, obstacles []geom.Polygon, border geom.Polygon) bool {
	fromPose := rm.Pose(from)
	toPose := rm.Pose(to)
	start := geom.Pose2D{X: rm.nodes[from.Node].X(), Y: rm.nodes[from.Node].Y(), Theta: fromPose.theta}
	end := geom.Pose2D{X: rm.nodes[to.Node].X(), Y: rm.nodes[to.Node].Y(), Theta: toPose.theta}

	curve, err := dubins.ShortestPath(start, end, kmax, obstacles, border)
	if err != nil {
		return false
	}

	fromPose.out = append(fromPose.out, Connection{From: from, To: to, Kind: ConnDubins, Path: curve})
	toPose.in = append(toPose.in, ConnID{From: from, Index: len(fromPose.out) - 1})

	return true
}

// addPose appends an orientation to a node and returns its handle.
func (rm *RoadMap) addPose(node NodeID, theta float64) PoseID {
	n := &rm.nodes[node]
	id := PoseID{Node: node, Pose: len(n.poses)}
	n.poses = append(n.poses, Orientation{id: id, theta: theta})

	return id
}

// Build materializes the oriented layer: every node gets
// orientationsPerNode poses at angles 2πi/N, then for every base edge
// every pose pair is offered a Dubins connection, keeping those that are
// collision-free against the obstacles and the border. Any previous
// orientations (and their edges) are discarded first.
//
// Returns the number of connections created.
// Complexity: O(|E|·N²) Dubins solves.
func (rm *RoadMap) Build(orientationsPerNode int, kmax float64, obstacles []geom.Polygon, border geom.Polygon) (int, error) {
	if orientationsPerNode <= 0 {
		return 0, ErrBadOrientationCount
	}

	// Fresh orientation layer.
	step := 2 * math.Pi / float64(orientationsPerNode)
	for i := range rm.nodes {
		rm.nodes[i].poses = nil
		for p := 0; p < orientationsPerNode; p++ {
			rm.addPose(rm.nodes[i].id, step*float64(p))
		}
	}

	// Offer a Dubins connection to every pose pair along every base edge.
	connections := 0
	for i := range rm.nodes {
		node := &rm.nodes[i]
		for _, otherID := range node.adj {
			other := &rm.nodes[otherID]
			for p := range node.poses {
				for q := range other.poses {
					if rm.connectPoses(node.poses[p].id, other.poses[q].id, kmax, obstacles, border) {
						connections++
					}
				}
			}
		}
	}

	return connections, nil
}

// KNearest returns up to k node ids ordered by ascending squared
// Euclidean distance from pos, excluding skip (pass a negative id to skip
// nothing). Ties break on node id so the result is deterministic.
// Complexity: O(n log n).
func (rm *RoadMap) KNearest(pos geom.Point, k int, skip NodeID) []NodeID {
	type distNode struct {
		d  float64
		id NodeID
	}
	candidates := make([]distNode, 0, len(rm.nodes))
	for i := range rm.nodes {
		if rm.nodes[i].id == skip {
			continue
		}
		d := rm.nodes[i].pos.Sub(pos)
		candidates = append(candidates, distNode{d: d.X*d.X + d.Y*d.Y, id: rm.nodes[i].id})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].d != candidates[j].d {
			return candidates[i].d < candidates[j].d
		}

		return candidates[i].id < candidates[j].id
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	out := make([]NodeID, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, candidates[i].id)
	}

	return out
}

// AddStartPose introduces a distinguished single-orientation pose at pos
// and wires it with outgoing Dubins connections to every orientation of
// its k nearest nodes. The node is created unless one already sits at
// exactly pos. Returns ErrStartUnreachable when not a single connection
// succeeds.
func (rm *RoadMap) AddStartPose(pos geom.Point, angle float64, k int, kmax float64, obstacles []geom.Polygon, border geom.Polygon) (PoseID, error) {
	id := rm.AddNode(pos)
	pose := rm.addPose(id, geom.Mod2Pi(angle))

	ok := false
	for _, closest := range rm.KNearest(pos, k, id) {
		for p := 0; p < rm.nodes[closest].PoseCount(); p++ {
			ok = rm.connectPoses(pose, PoseID{Node: closest, Pose: p}, kmax, obstacles, border) || ok
		}
	}
	if !ok {
		return PoseID{}, ErrStartUnreachable
	}

	return pose, nil
}

// AddGoalPose is the mirror of AddStartPose: the new pose receives
// incoming Dubins connections from every orientation of its k nearest
// nodes. Returns ErrGoalUnreachable when not a single connection
// succeeds.
func (rm *RoadMap) AddGoalPose(pos geom.Point, angle float64, k int, kmax float64, obstacles []geom.Polygon, border geom.Polygon) (PoseID, error) {
	id := rm.AddNode(pos)
	pose := rm.addPose(id, geom.Mod2Pi(angle))

	ok := false
	for _, closest := range rm.KNearest(pos, k, id) {
		for p := 0; p < rm.nodes[closest].PoseCount(); p++ {
			ok = rm.connectPoses(PoseID{Node: closest, Pose: p}, pose, kmax, obstacles, border) || ok
		}
	}
	if !ok {
		return PoseID{}, ErrGoalUnreachable
	}

	return pose, nil
}

// Bypass adds shortcut base-graph edges around edges shorter than
// minDist: for every such edge (u, v), u is connected directly to every
// neighbor of v. When removeShort is true the short edges themselves are
// removed afterwards. Returns the number of new edges created.
//
// Call before Build — like all base-graph mutation, it has no effect on
// an already materialized oriented layer.
func (rm *RoadMap) Bypass(minDist float64, removeShort bool) int {
	type edge struct{ from, to NodeID }
	var short []edge
	for i := range rm.nodes {
		u := &rm.nodes[i]
		for _, v := range u.adj {
			if u.pos.Sub(rm.nodes[v].pos).Norm() < minDist {
				short = append(short, edge{from: u.id, to: v})
			}
		}
	}

	created := 0
	for _, e := range short {
		v := &rm.nodes[e.to]
		for _, w := range v.adj {
			if w == e.from {
				continue
			}
			if rm.Connect(e.from, w) {
				created++
			}
		}
	}
	if removeShort {
		for _, e := range short {
			rm.Disconnect(e.from, e.to)
		}
	}

	return created
}
