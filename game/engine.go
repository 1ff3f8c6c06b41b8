package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/dubnav/navmap"
	"github.com/katalvlaran/dubnav/roadmap"
)

// Sentinel errors for game setup and execution.
var (
	// ErrNoGates indicates Run was called without any evader maps.
	ErrNoGates = errors.New("game: no gate navigation maps supplied")

	// ErrBadMap indicates an evader map that is not reverse-computed.
	ErrBadMap = errors.New("game: evader maps must be reverse-computed")

	// ErrEvaderStuck indicates the evader has no path to a chosen gate.
	ErrEvaderStuck = errors.New("game: evader cannot reach the chosen gate")
)

// Outcome is the terminal state of a finished game.
type Outcome int

const (
	// OutcomeCaught means the pursuer intercepted the evader.
	OutcomeCaught Outcome = iota

	// OutcomeEscaped means the evader reached a gate uncaught.
	OutcomeEscaped
)

// Result carries the two navigation lists of a finished game together
// with its terminal state. Wait edges may appear in the pursuer list.
type Result struct {
	Evader  []roadmap.Connection
	Pursuer []roadmap.Connection
	Outcome Outcome
}

// engine bundles the mutable state of one game run.
type engine struct {
	evaderMaps []*navmap.NavMap // one reverse map per gate
	pursuerMap *navmap.NavMap   // recomputed in place every pursuer turn
	sourceE    roadmap.PoseID
	sourceP    roadmap.PoseID
	rng        *rand.Rand

	listE []roadmap.Connection
	listP []roadmap.Connection

	evaderS  float64
	pursuerS float64
	goal     int
}

// Run plays the full pursuer–evader game.
//
// evaderMaps holds one reverse-computed NavMap per gate; pursuerMap is a
// forward map the engine recomputes in place before every interception.
// sourceE and sourceP are the robots' attached start poses. A nil rng
// selects the deterministic default stream (NewRNG(0)).
//
// The returned lists always reflect the moves played up to the terminal
// state, including the final (possibly colliding) edges.
func Run(evaderMaps []*navmap.NavMap, pursuerMap *navmap.NavMap,
	sourceE, sourceP roadmap.PoseID, rng *rand.Rand) (Result, error) {
	if len(evaderMaps) == 0 {
		return Result{}, ErrNoGates
	}
	for _, nm := range evaderMaps {
		if !nm.IsReverse() {
			return Result{}, ErrBadMap
		}
	}
	if rng == nil {
		rng = NewRNG(0)
	}

	e := &engine{
		evaderMaps: evaderMaps,
		pursuerMap: pursuerMap,
		sourceE:    sourceE,
		sourceP:    sourceP,
		rng:        rng,
	}

	for {
		caught, err := e.moveEvader()
		if err != nil {
			return Result{}, err
		}
		if caught {
			return e.result(OutcomeCaught), nil
		}

		caught, done := e.movePursuer()
		if caught {
			return e.result(OutcomeCaught), nil
		}
		if done {
			return e.result(OutcomeEscaped), nil
		}
	}
}

func (e *engine) result(o Outcome) Result {
	return Result{Evader: e.listE, Pursuer: e.listP, Outcome: o}
}

// evaderPose is the pose the evader currently occupies.
func (e *engine) evaderPose() roadmap.PoseID {
	if len(e.listE) == 0 {
		return e.sourceE
	}

	return e.listE[len(e.listE)-1].To
}

// pursuerPose is the pose the pursuer currently occupies.
func (e *engine) pursuerPose() roadmap.PoseID {
	if len(e.listP) == 0 {
		return e.sourceP
	}

	return e.listP[len(e.listP)-1].To
}

// moveEvader advances the evader until it leads in arc length. Each step
// picks a random gate and follows the first edge of the shortest path to
// it. Returns caught=true when the step triggers the catch predicate.
func (e *engine) moveEvader() (caught bool, err error) {
	for !e.escaped() && e.evaderS <= e.pursuerS {
		// Pick a random exit and plan toward it.
		e.goal = e.rng.Intn(len(e.evaderMaps))
		tmp, planErr := e.evaderMaps[e.goal].PlanFrom(e.evaderPose())
		if planErr != nil {
			return false, fmt.Errorf("%w: gate %d: %v", ErrEvaderStuck, e.goal, planErr)
		}

		e.listE = append(e.listE, tmp[0])
		e.evaderS += tmp[0].Length()

		// Caught? Same node, or the two robots swapped nodes.
		if len(e.listP) > 0 {
			eLast := e.listE[len(e.listE)-1]
			pLast := e.listP[len(e.listP)-1]
			if eLast.To.Node == pLast.To.Node ||
				(eLast.To.Node == pLast.From.Node && eLast.From.Node == pLast.To.Node) {
				return true, nil
			}
		}

		// The chosen edge leads straight to the gate: escape pending.
		if len(tmp) == 1 {
			e.evaderS = math.Inf(1)
			break
		}
	}

	return false, nil
}

// movePursuer re-plans the pursuer and advances it until it matches the
// evader's arc length. Returns caught=true on interception, done=true
// when the game ends with the evader escaped.
func (e *engine) movePursuer() (caught, done bool) {
	// A stuck pursuer cannot respond; once the escape is committed the
	// game is over.
	if e.escaped() && math.IsInf(e.pursuerS, 1) {
		return false, true
	}

	// Predict the evader's remaining path under its current goal,
	// starting from the pose it left last.
	fromPose := e.sourceE
	if len(e.listE) > 0 {
		fromPose = e.listE[len(e.listE)-1].From
	}
	eBest, err := e.evaderMaps[e.goal].PlanFrom(fromPose)
	if err != nil {
		return false, e.stuck()
	}

	var tmp []roadmap.Connection
	if len(eBest) == 1 {
		// The evader is on its final edge to the gate: head there too.
		tmp, err = e.evaderMaps[e.goal].PlanFrom(e.pursuerPose())
		if err != nil {
			return false, e.stuck()
		}
	} else {
		// Recompute the forward map from the current pose and intercept
		// the evader's remaining path; the offset accounts for the
		// evader's positional lead along its first edge.
		e.pursuerMap.Compute(e.pursuerPose())
		tmp, err = e.pursuerMap.Intercept(eBest, eBest[0].Length()-e.evaderS+e.pursuerS)
		if err != nil {
			return false, e.stuck()
		}
	}

	for e.pursuerS < e.evaderS {
		if len(tmp) == 0 {
			// Planned movement completed. An evader that already drove
			// through its gate is out of the arena and cannot be met.
			if e.escaped() {
				return false, true
			}
			// Meeting the evader next?
			if len(e.listE) > 0 && len(e.listP) > 0 &&
				e.listE[len(e.listE)-1].To.Node == e.listP[len(e.listP)-1].To.Node {
				return true, false
			}
			// Wait for the evader to take its next move.
			e.listP = append(e.listP, roadmap.WaitConnection(e.pursuerPose(), e.evaderS-e.pursuerS))
			e.pursuerS = e.evaderS

			return false, false
		}

		e.listP = append(e.listP, tmp[0])
		e.pursuerS += tmp[0].Length()
		tmp = tmp[1:]
	}

	return false, false
}

// escaped reports whether the evader has already committed to a gate.
func (e *engine) escaped() bool { return math.IsInf(e.evaderS, 1) }

// stuck marks the pursuer as unable to make progress. The evader then
// completes its escape unopposed; when it already has, the game is over.
func (e *engine) stuck() (done bool) {
	e.pursuerS = math.Inf(1)

	return e.escaped()
}
