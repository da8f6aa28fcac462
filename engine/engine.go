package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ogre-chess/ogre/board"
	"github.com/ogre-chess/ogre/position"
)

const (
	// DefaultSampleCount is the number of random picks BestMove draws
	// before ranking.
	DefaultSampleCount = 200

	// pickRetryFactor bounds retries when picked pieces keep having no
	// destination; a side with no move at all must not spin forever.
	pickRetryFactor = 64
)

var (
	ErrNoMove = errors.New("cannot resolve best move")
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	Samples         int
	LookaheadWeight float64
	CaptureScores   map[board.Kind]float64
	Seed            uint64
	Debug           bool
	Logger          func(...any)
}

type Engine struct {
	config EngineConfig
	rand   *PseudoRand
	logger func(...any)
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Samples == 0 {
		cfg.Samples = DefaultSampleCount
	}
	if cfg.LookaheadWeight == 0 {
		cfg.LookaheadWeight = DefaultLookaheadWeight
	}
	if cfg.CaptureScores == nil {
		cfg.CaptureScores = DefaultCaptureScores
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}

	return &Engine{
		config: *cfg,
		rand:   NewPseudoRand(cfg.Seed),
		logger: cfg.Logger,
	}
}

type sampleKey struct {
	from, to position.Pos
	promote  bool
}

type scoredMove struct {
	mv    *board.Move
	score float64
}

// BestMove samples random (piece, destination) pairs for the side to move,
// deduplicates them, ranks the candidates by EvaluateMove and executes the
// best one. The pool is a random, possibly incomplete sample; the engine
// may miss the true best move.
func (e *Engine) BestMove(b *board.Board) (*board.Move, error) {
	startTime := time.Now()
	pieces := b.ActivePlayer().Pieces()
	if len(pieces) == 0 {
		return nil, ErrNoMove
	}

	samples := make(map[sampleKey]*board.Move)
	attempts, maxAttempts := 0, pickRetryFactor*max(e.config.Samples, 1)
	for picked := 0; picked < e.config.Samples; {
		if attempts++; attempts > maxAttempts {
			break
		}
		p := pieces[e.rand.Intn(len(pieces))]
		mvs := p.PossibleMoves()
		if len(mvs) == 0 {
			// retry the whole pick
			continue
		}
		mv := mvs[e.rand.Intn(len(mvs))]
		samples[sampleKey{from: mv.From, to: mv.To, promote: mv.Promote != nil}] = mv
		picked++
	}
	if len(samples) == 0 {
		return nil, ErrNoMove
	}

	candidates := make([]scoredMove, 0, len(samples))
	for _, mv := range samples {
		candidates = append(candidates, scoredMove{mv: mv, score: e.EvaluateMove(b, mv)})
	}
	sort.Slice(candidates, func(i, j int) bool {
		// notation tie-break keeps seeded runs reproducible
		if candidates[i].score == candidates[j].score {
			return candidates[i].mv.Notation() < candidates[j].mv.Notation()
		}
		return candidates[i].score < candidates[j].score
	})
	best := candidates[len(candidates)-1]

	if e.config.Debug {
		e.logger(message.NewPrinter(language.English).
			Sprintf("samples:%d unique:%d score:[%+.2f, %+.2f] t:%s\n    best %s",
				attempts, len(candidates),
				candidates[0].score, best.score,
				time.Since(startTime), best.mv))
	}

	b.MakeMove(best.mv)
	return best.mv, nil
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}
