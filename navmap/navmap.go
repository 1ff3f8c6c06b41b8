package navmap

import (
	"container/heap"
	"errors"
	"math"

	"github.com/katalvlaran/dubnav/roadmap"
)

// Sentinel errors for navigation map queries.
var (
	// ErrNotComputed indicates a query on a NavMap that was never
	// computed (or was reset since).
	ErrNotComputed = errors.New("navmap: navigation map not computed")

	// ErrWrongDirection indicates a forward query on a reverse-computed
	// map, or the other way around.
	ErrWrongDirection = errors.New("navmap: query direction does not match computation")

	// ErrNoPath indicates that no path connects the query pose with the
	// computation source (or goal).
	ErrNoPath = errors.New("navmap: no existing path connecting source and goal")
)

type mode int

const (
	modeNone mode = iota
	modeForward
	modeReverse
)

// invalidConn marks "no edge recorded" entries of the last-edge table.
var invalidConn = roadmap.ConnID{From: roadmap.PoseID{Node: -1, Pose: -1}, Index: -1}

// NavMap holds the per-pose cost and last-edge tables of one shortest-path
// precomputation over a roadmap. A NavMap keeps a non-owning reference to
// its roadmap for its whole lifetime; it is not safe for concurrent use.
type NavMap struct {
	rm     *roadmap.RoadMap
	dist   [][]float64
	last   [][]roadmap.ConnID
	mode   mode
	origin roadmap.PoseID // source (forward) or goal (reverse)
}

// New returns a NavMap bound to the given roadmap, with empty tables.
func New(rm *roadmap.RoadMap) *NavMap {
	nm := &NavMap{rm: rm}
	nm.reset(modeNone)

	return nm
}

// Reset clears all precomputed values. It is called automatically before
// every new computation; tables are reallocated to exactly
// node_count × pose_count.
func (nm *NavMap) Reset() { nm.reset(modeNone) }

func (nm *NavMap) reset(m mode) {
	n := nm.rm.NodeCount()
	nm.dist = make([][]float64, n)
	nm.last = make([][]roadmap.ConnID, n)

	unreached := math.Inf(1)
	if m == modeReverse {
		unreached = math.Inf(-1)
	}
	for i := 0; i < n; i++ {
		poses := nm.rm.Node(roadmap.NodeID(i)).PoseCount()
		nm.dist[i] = make([]float64, poses)
		nm.last[i] = make([]roadmap.ConnID, poses)
		for p := 0; p < poses; p++ {
			nm.dist[i][p] = unreached
			nm.last[i][p] = invalidConn
		}
	}
	nm.mode = m
}

// IsReverse reports whether the map was computed with ComputeReverse.
func (nm *NavMap) IsReverse() bool { return nm.mode == modeReverse }

// Computed reports whether the map holds a valid precomputation.
func (nm *NavMap) Computed() bool { return nm.mode != modeNone }

// poseItem is one priority-queue entry: a pose handle with the distance
// it was pushed at (lazy decrease-key — stale entries are skipped on pop).
type poseItem struct {
	dist float64
	pose roadmap.PoseID
}

// poseQueue is a heap of poseItem. Forward maps pop the minimum distance,
// reverse maps the maximum (stored distances are negated costs). Ties
// break on (node id, pose index) so the processing order — and therefore
// every reconstructed plan — is deterministic.
type poseQueue struct {
	items   []poseItem
	reverse bool
}

func (pq *poseQueue) Len() int { return len(pq.items) }

func (pq *poseQueue) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.dist != b.dist {
		if pq.reverse {
			return a.dist > b.dist
		}

		return a.dist < b.dist
	}
	if a.pose.Node != b.pose.Node {
		return a.pose.Node < b.pose.Node
	}

	return a.pose.Pose < b.pose.Pose
}

func (pq *poseQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *poseQueue) Push(x interface{}) { pq.items = append(pq.items, x.(poseItem)) }

func (pq *poseQueue) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}

// Compute runs forward Dijkstra from the given source pose: after it
// returns, dist[x] is the best cost source→x and last[x] the final edge
// of that best path. Any previous computation is discarded.
func (nm *NavMap) Compute(source roadmap.PoseID) {
	nm.reset(modeForward)
	nm.origin = source
	nm.dist[source.Node][source.Pose] = 0

	pq := &poseQueue{}
	heap.Init(pq)
	heap.Push(pq, poseItem{dist: 0, pose: source})

	for pq.Len() > 0 {
		top := heap.Pop(pq).(poseItem)
		if top.dist != nm.dist[top.pose.Node][top.pose.Pose] {
			continue // stale entry
		}
		cur := nm.rm.Pose(top.pose)
		for i := 0; i < cur.ConnCount(); i++ {
			conn := cur.Conn(i)
			cand := top.dist + conn.Length()
			if cand < nm.dist[conn.To.Node][conn.To.Pose] {
				nm.dist[conn.To.Node][conn.To.Pose] = cand
				nm.last[conn.To.Node][conn.To.Pose] = roadmap.ConnID{From: top.pose, Index: i}
				heap.Push(pq, poseItem{dist: cand, pose: conn.To})
			}
		}
	}
}

// ComputeReverse runs Dijkstra on the reversed graph from the given goal
// pose, walking each pose's incoming edge list. Stored distances are
// negated costs-to-goal (dist[x] = −cost(x→goal), −∞ when unreachable)
// and last[x] holds the first edge of the best path from x to the goal,
// so PlanFrom reconstructs forward without reversing anything at query
// time.
func (nm *NavMap) ComputeReverse(goal roadmap.PoseID) {
	nm.reset(modeReverse)
	nm.origin = goal
	nm.dist[goal.Node][goal.Pose] = 0

	pq := &poseQueue{reverse: true}
	heap.Init(pq)
	heap.Push(pq, poseItem{dist: 0, pose: goal})

	for pq.Len() > 0 {
		top := heap.Pop(pq).(poseItem)
		if top.dist != nm.dist[top.pose.Node][top.pose.Pose] {
			continue // stale entry
		}
		cur := nm.rm.Pose(top.pose)
		for i := 0; i < cur.IncomingCount(); i++ {
			connID := cur.Incoming(i)
			adj := connID.From
			cand := top.dist - nm.rm.Conn(connID).Length()
			if nm.dist[adj.Node][adj.Pose] < cand {
				nm.dist[adj.Node][adj.Pose] = cand
				nm.last[adj.Node][adj.Pose] = connID
				heap.Push(pq, poseItem{dist: cand, pose: adj})
			}
		}
	}
}

// Value returns the precomputed value stored for a pose: the cost from
// the source in forward mode, the negated cost to the goal in reverse
// mode. ±∞ means "not reached".
func (nm *NavMap) Value(pose roadmap.PoseID) (float64, error) {
	if nm.mode == modeNone {
		return 0, ErrNotComputed
	}

	return nm.dist[pose.Node][pose.Pose], nil
}

// NodeValue returns the smallest precomputed value over all poses of a
// node.
func (nm *NavMap) NodeValue(node roadmap.NodeID) (float64, error) {
	if nm.mode == modeNone {
		return 0, ErrNotComputed
	}

	return nm.nodeValue(node), nil
}

func (nm *NavMap) nodeValue(node roadmap.NodeID) float64 {
	best := nm.dist[node][0]
	for _, d := range nm.dist[node][1:] {
		if d < best {
			best = d
		}
	}

	return best
}

// resolve materializes a handle chain into connection values.
func (nm *NavMap) resolve(ids []roadmap.ConnID) []roadmap.Connection {
	out := make([]roadmap.Connection, len(ids))
	for i, id := range ids {
		out[i] = *nm.rm.Conn(id)
	}

	return out
}

// PlanTo reconstructs the best path from the computation source to the
// given pose by walking the last-edge table backwards. Requires a forward
// computation. Planning to the source itself yields an empty plan.
func (nm *NavMap) PlanTo(goal roadmap.PoseID) ([]roadmap.Connection, error) {
	if nm.mode == modeNone {
		return nil, ErrNotComputed
	}
	if nm.mode != modeForward {
		return nil, ErrWrongDirection
	}

	var chain []roadmap.ConnID
	cur := goal
	for {
		id := nm.last[cur.Node][cur.Pose]
		if id == invalidConn {
			break
		}
		chain = append(chain, id)
		cur = id.From
	}
	if cur != nm.origin {
		return nil, ErrNoPath
	}

	// The chain was collected goal→source; flip it.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return nm.resolve(chain), nil
}

// PlanToNode plans to the orientation of the given node with the smallest
// precomputed cost. Requires a forward computation.
func (nm *NavMap) PlanToNode(goal roadmap.NodeID) ([]roadmap.Connection, error) {
	if nm.mode == modeNone {
		return nil, ErrNotComputed
	}
	if nm.mode != modeForward {
		return nil, ErrWrongDirection
	}

	best := 0
	for p := 1; p < len(nm.dist[goal]); p++ {
		if nm.dist[goal][p] < nm.dist[goal][best] {
			best = p
		}
	}

	return nm.PlanTo(roadmap.PoseID{Node: goal, Pose: best})
}

// PlanFrom reconstructs the best path from the given pose to the
// computation goal by walking the last-edge table forward. Requires a
// reverse computation; a pose with no recorded edge (including the goal
// itself) yields ErrNoPath.
func (nm *NavMap) PlanFrom(source roadmap.PoseID) ([]roadmap.Connection, error) {
	if nm.mode == modeNone {
		return nil, ErrNotComputed
	}
	if nm.mode != modeReverse {
		return nil, ErrWrongDirection
	}

	var chain []roadmap.ConnID
	cur := source
	for {
		id := nm.last[cur.Node][cur.Pose]
		if id == invalidConn {
			break
		}
		chain = append(chain, id)
		cur = nm.rm.Conn(id).To
	}
	if len(chain) == 0 {
		return nil, ErrNoPath
	}

	return nm.resolve(chain), nil
}

// Intercept plans the shortest path that reaches the given external path
// no later than whoever is travelling it. The travel along path is
// simulated with its arc length accumulated from −offset; the first edge
// whose endpoint the pursuer can reach by then (running ≥ value of the
// endpoint node) is the interception target. When no edge qualifies the
// plan falls back to chasing the final node of the path.
//
// Requires a forward computation from the interceptor's pose.
func (nm *NavMap) Intercept(path []roadmap.Connection, offset float64) ([]roadmap.Connection, error) {
	if nm.mode == modeNone {
		return nil, ErrNotComputed
	}
	if nm.mode != modeForward {
		return nil, ErrWrongDirection
	}
	if len(path) == 0 {
		return nil, ErrNoPath
	}

	running := -offset
	for _, e := range path {
		running += e.Length()
		if running-nm.nodeValue(e.To.Node) >= 0 {
			return nm.PlanToNode(e.To.Node)
		}
	}

	return nm.PlanToNode(path[len(path)-1].To.Node)
}

// ShortestPath answers a single source→goal query without retaining any
// table: a forward Dijkstra that stops as soon as the goal pose is
// settled. Prefer a NavMap when several queries share one source.
func ShortestPath(rm *roadmap.RoadMap, source, goal roadmap.PoseID) ([]roadmap.Connection, error) {
	nm := New(rm)
	nm.reset(modeForward)
	nm.origin = source
	nm.dist[source.Node][source.Pose] = 0

	pq := &poseQueue{}
	heap.Init(pq)
	heap.Push(pq, poseItem{dist: 0, pose: source})

	for pq.Len() > 0 {
		top := heap.Pop(pq).(poseItem)
		if top.dist != nm.dist[top.pose.Node][top.pose.Pose] {
			continue
		}
		if top.pose == goal {
			break
		}
		cur := rm.Pose(top.pose)
		for i := 0; i < cur.ConnCount(); i++ {
			conn := cur.Conn(i)
			cand := top.dist + conn.Length()
			if cand < nm.dist[conn.To.Node][conn.To.Pose] {
				nm.dist[conn.To.Node][conn.To.Pose] = cand
				nm.last[conn.To.Node][conn.To.Pose] = roadmap.ConnID{From: top.pose, Index: i}
				heap.Push(pq, poseItem{dist: cand, pose: conn.To})
			}
		}
	}

	return nm.PlanTo(goal)
}
