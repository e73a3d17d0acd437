package game

import (
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pascman/internal/component"
	"pascman/internal/config"
	"pascman/internal/ecs"
	"pascman/internal/factory"
	"pascman/internal/gamemap"
	"pascman/internal/protocol"
	"pascman/internal/system"
)

// Option customises a Simulation.
type Option func(*Simulation)

// WithQueue makes the simulation drain q at the top of every tick.
func WithQueue(q *protocol.Queue) Option {
	return func(s *Simulation) { s.queue = q }
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(s *Simulation) { s.clock = c }
}

// WithRand replaces the random source used by random walkers.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulation) { s.env.Rng = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) { s.log = l }
}

// Simulation owns the world and everything a tick needs.
type Simulation struct {
	world  *ecs.World
	layout *gamemap.Layout
	env    *system.Env
	queue  *protocol.Queue
	clock  Clock
	log    *zap.Logger

	running *ecs.Schedule
	over    *ecs.Schedule
	idle    *ecs.Schedule

	status   GameStatus
	fault    error
	frame    Frame
	player   uint32
	villains factory.VillainBrain
	runlog   string
	gridW    int // map size a REGISTRATION starts from
	gridH    int

	tick     uint64 // ticks since construction
	overTick uint64 // tick at which Over was entered
	round    roundInfo
}

type roundInfo struct {
	id      uuid.UUID
	started time.Time
	ticks   uint64
	logged  bool
}

// New builds a simulation over layout and starts the first round.
func New(layout *gamemap.Layout, cfg *config.Config, opts ...Option) *Simulation {
	s := &Simulation{
		world: ecs.NewWorld(),
		layout: &gamemap.Layout{
			Map:    layout.Map.Clone(),
			Spawns: slices.Clone(layout.Spawns),
		},
		env: &system.Env{
			Map:             layout.Map.Clone(),
			PowerupDuration: cfg.Game.PowerupDuration,
			MaxDepth:        cfg.AI.MaxDepth,
			RespawnVillains: cfg.Game.RespawnVillains,
		},
		clock:    SystemClock{},
		log:      zap.NewNop(),
		player:   PlayerHero,
		villains: villainBrain(cfg),
		gridW:    cfg.Protocol.Width,
		gridH:    cfg.Protocol.Height,
	}
	if cfg.RunLog.Enabled {
		s.runlog = cfg.RunLog.Path
		if s.runlog == "" {
			if p, err := defaultRunLogPath(); err == nil {
				s.runlog = p
			}
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.env.Rng == nil {
		seed := cfg.Game.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.env.Rng = rand.New(rand.NewSource(seed))
	}
	s.buildSchedules()

	s.env.Now = s.clock.Now()
	s.restart()
	if err := s.idle.Run(s.world); err != nil {
		s.fault = err
	}
	return s
}

func villainBrain(cfg *config.Config) factory.VillainBrain {
	switch cfg.Game.VillainBehavior {
	case config.BehaviorSmart:
		return factory.VillainBrain{Kind: component.BrainSmart, Interval: cfg.AI.SmartInterval}
	case config.BehaviorRandom:
		return factory.VillainBrain{Kind: component.BrainRandom, Interval: cfg.AI.RandomInterval}
	}
	return factory.VillainBrain{}
}

func sys(name string, fn ecs.SystemFunc) ecs.System { return ecs.System{Name: name, Run: fn} }

func (s *Simulation) buildSchedules() {
	env := s.env
	s.running = ecs.NewSchedule("running").
		Stage("input", sys("input", system.Input(env))).
		Stage("ai", sys("planner", system.Planner(env))).
		Stage("movement", sys("movement", system.Movement(env))).
		Stage("interactions",
			sys("eat-food", system.EatFood(env)),
			sys("kill-victims", system.KillVictims(env)),
			sys("consume-powerups", system.ConsumePowerups(env))).
		Stage("timers", sys("delayed-swaps", system.DelayedSwaps(env))).
		Stage("roleswap", sys("roleswap", system.RoleSwap(env))).
		Stage("frame", sys("frame", s.prepareFrame)).
		Stage("cleanup", sys("cleanup", system.Cleanup(env))).
		Stage("endgame", sys("endgame", system.EndGame(env)))

	s.over = ecs.NewSchedule("over").
		Stage("frame", sys("frame", s.prepareFrame)).
		Stage("restart", sys("restart", s.proceedToRestart))

	s.idle = ecs.NewSchedule("idle").
		Stage("frame", sys("frame", s.prepareFrame))
}

// Tick advances the simulation by one frame. A pending restart happens
// first, then queued messages are applied in arrival order, then the
// schedule matching the phase runs.
func (s *Simulation) Tick(in Input) {
	s.tick++
	s.env.Now = s.clock.Now()
	restarted := false
	if s.status.Phase == NotStarted {
		s.restart()
		restarted = true
	}
	if s.queue != nil {
		s.ingest()
	}
	s.env.Key, s.env.KeyPressed, s.env.AnyKey = in.Dir, in.Move, in.pressed()
	s.env.Verdict = system.VerdictNone

	sched := s.idle
	switch s.status.Phase {
	case Running:
		if !restarted {
			s.round.ticks++
			sched = s.running
		}
	case Over:
		sched = s.over
	}
	if err := sched.Run(s.world); err != nil {
		s.fault = err
		s.log.Error("schedule failed", zap.String("schedule", sched.Name()), zap.Error(err))
		return
	}
	s.fault = nil

	switch s.env.Verdict {
	case system.VerdictWon:
		s.finish(Outcome{Kind: Won, Winner: s.player, Loser: opponent(s.player)})
	case system.VerdictLost:
		s.finish(Outcome{Kind: Lost, Winner: opponent(s.player), Loser: s.player})
	}
}

func opponent(p uint32) uint32 {
	if p == PlayerVillain {
		return PlayerHero
	}
	return PlayerVillain
}

// restart clears the world and replays the last known layout.
func (s *Simulation) restart() {
	s.world.Clear()
	s.env.Map = s.layout.Map.Clone()
	s.newRound()
	for _, sp := range s.layout.Spawns {
		s.spawn(sp)
	}
	s.log.Info("round started",
		zap.String("run_id", s.round.id.String()),
		zap.Int("entities", s.world.Len()))
}

func (s *Simulation) newRound() {
	s.env.Round = system.Round{}
	s.round = roundInfo{id: uuid.New(), started: s.env.Now}
	s.status = GameStatus{Phase: Running}
}

// spawn creates the entity a layout entry describes.
func (s *Simulation) spawn(sp gamemap.Spawn) ecs.EntityID {
	switch sp.Kind {
	case gamemap.SpawnHero:
		s.env.Round.HeroSpawned = true
		return factory.NewHero(s.world, sp.ID, sp.X, sp.Y)
	case gamemap.SpawnVillain:
		return factory.NewVillain(s.world, sp.ID, sp.X, sp.Y, sp.Variant, s.villains)
	case gamemap.SpawnSuperfood:
		s.env.Round.FoodSpawned = true
		return factory.NewSuperfood(s.world, sp.ID, sp.X, sp.Y)
	default:
		s.env.Round.FoodSpawned = true
		return factory.NewFood(s.world, sp.ID, sp.X, sp.Y)
	}
}

// finish enters the Over phase with o.
func (s *Simulation) finish(o Outcome) {
	s.status = GameStatus{Phase: Over, Outcome: o}
	s.overTick = s.tick
	s.log.Info("round over",
		zap.String("run_id", s.round.id.String()),
		zap.Stringer("outcome", o.Kind),
		zap.Uint32("winner", o.Winner),
		zap.Uint32("loser", o.Loser),
		zap.Uint64("ticks", s.round.ticks))
	s.logRound(o.Kind.String())
}

func (s *Simulation) proceedToRestart(*ecs.World, *ecs.CommandBuffer) error {
	if s.env.AnyKey && s.tick > s.overTick {
		s.status = GameStatus{Phase: NotStarted}
	}
	return nil
}

// Close ends the simulation. A round still in progress is logged as
// abandoned.
func (s *Simulation) Close() {
	if s.status.Phase == Running {
		s.logRound("abandoned")
	}
	s.world.Clear()
	_ = s.log.Sync()
}

// Status returns the current game status.
func (s *Simulation) Status() GameStatus { return s.status }

// Fault returns the error of the last schedule run, or nil once a later
// run succeeded.
func (s *Simulation) Fault() error { return s.fault }

// Frame returns the snapshot prepared by the last tick.
func (s *Simulation) Frame() Frame { return s.frame }

// World exposes the entity store for inspection.
func (s *Simulation) World() *ecs.World { return s.world }

// Map returns the live map.
func (s *Simulation) Map() *gamemap.GameMap { return s.env.Map }

// Round returns the bookkeeping of the current round.
func (s *Simulation) Round() system.Round { return s.env.Round }

// RunID identifies the current round.
func (s *Simulation) RunID() uuid.UUID { return s.round.id }
