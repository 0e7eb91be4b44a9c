// Package engine drives the ingestion pipeline: raw lines flow through
// the chat-noise filter and the classifier into the event sink. A
// single consumer drains the line queue so player upserts and event
// log appends happen in the exact order lines were observed, even
// though the parsing functions themselves are reentrant.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/groupwatch/groupwatch/internal/model"
	"github.com/groupwatch/groupwatch/internal/parser"
	"github.com/groupwatch/groupwatch/internal/service"
)

// Config controls engine behavior.
type Config struct {
	// QueueSize bounds the pending line queue. Zero means a sane default.
	QueueSize int
	// KeepUnknown persists unclassifiable lines to the event log for
	// later audit instead of dropping them.
	KeepUnknown bool
}

// Stats summarizes one ingestion run.
type Stats struct {
	ByAction  map[model.ActionType]int
	Enqueued  int
	ChatNoise int
	NoEvent   int
	Unknown   int
	Logged    int
	Errors    int
}

// Engine owns the ingestion worker. Create with New, then Start,
// Submit lines, and Stop to drain and shut down.
type Engine struct {
	classifier *parser.Classifier
	sink       service.EventSink
	lines      chan string
	done       chan struct{}
	lastTS     time.Time
	cfg        Config
	mu         sync.Mutex
	stats      Stats
	started    bool
}

// New creates an ingestion engine writing to the given sink.
func New(classifier *parser.Classifier, sink service.EventSink, cfg Config) *Engine {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	return &Engine{
		classifier: classifier,
		sink:       sink,
		cfg:        cfg,
		lines:      make(chan string, cfg.QueueSize),
		done:       make(chan struct{}),
		stats:      Stats{ByAction: make(map[model.ActionType]int)},
	}
}

// Start launches the single consumer worker. It returns an error if
// the engine was already started.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return fmt.Errorf("engine already started")
	}
	e.started = true

	go e.run(ctx)
	return nil
}

// Submit enqueues one raw line for processing, preserving arrival
// order. It blocks when the queue is full and fails once ctx is done.
func (e *Engine) Submit(ctx context.Context, line string) error {
	select {
	case e.lines <- line:
		e.mu.Lock()
		e.stats.Enqueued++
		e.mu.Unlock()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop closes the queue, waits for the worker to drain it, and
// returns the final run statistics.
func (e *Engine) Stop() Stats {
	close(e.lines)
	<-e.done
	return e.Stats()
}

// Stats returns a copy of the current counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.stats
	out.ByAction = make(map[model.ActionType]int, len(e.stats.ByAction))
	for k, v := range e.stats.ByAction {
		out.ByAction[k] = v
	}
	return out
}

func (e *Engine) run(ctx context.Context) {
	defer close(e.done)
	for line := range e.lines {
		e.process(ctx, line)
	}
}

func (e *Engine) process(ctx context.Context, line string) {
	normalized := strings.TrimSpace(parser.StripBold(strings.TrimSpace(line)))
	if parser.IsChatNoise(normalized) {
		e.count(func(s *Stats) { s.ChatNoise++ })
		return
	}

	ev := e.classifier.Classify(line)
	if ev == nil {
		e.count(func(s *Stats) { s.NoEvent++ })
		return
	}

	if ev.ActionType == model.ActionUnknown {
		e.count(func(s *Stats) { s.Unknown++ })
		if !e.cfg.KeepUnknown {
			slog.Debug("Dropping unclassifiable line", "raw", ev.RawText)
			return
		}
	}

	if err := e.persist(ctx, ev); err != nil {
		e.count(func(s *Stats) { s.Errors++ })
		slog.Error("Failed to persist event",
			"action", ev.ActionType,
			"raw", ev.RawText,
			"error", err)
		return
	}

	e.count(func(s *Stats) {
		s.Logged++
		s.ByAction[ev.ActionType]++
	})
}

func (e *Engine) persist(ctx context.Context, ev *model.ParsedEvent) error {
	if ev.Actor.HasAccount() {
		inGroup := ev.ActionType != model.ActionLeave
		if err := e.sink.UpsertPlayer(ctx, ev.Actor.AccountName, ev.Actor.Nickname, inGroup); err != nil {
			return err
		}
	}
	if ev.Target.HasAccount() {
		inGroup := ev.ActionType != model.ActionKick
		if err := e.sink.UpsertPlayer(ctx, ev.Target.AccountName, ev.Target.Nickname, inGroup); err != nil {
			return err
		}
	}

	record := &model.EventRecord{
		Timestamp:      e.nextTimestamp(),
		ActionType:     ev.ActionType,
		RawText:        ev.RawText,
		Details:        ev.DetailFields(),
		IsSystemAction: ev.IsSystemAction,
	}
	if ev.Actor != nil {
		record.ActorNickname = ev.Actor.Nickname
		record.ActorAccount = ev.Actor.AccountName
	}
	if ev.Target != nil {
		record.TargetNickname = ev.Target.Nickname
		record.TargetAccount = ev.Target.AccountName
	}

	return e.sink.LogEvent(ctx, record)
}

// nextTimestamp returns a strictly increasing timestamp so the event
// log's (ts, id) ordering always reflects arrival order, even when the
// clock does not advance between lines. Called from the worker only.
func (e *Engine) nextTimestamp() time.Time {
	now := time.Now().UTC()
	if !now.After(e.lastTS) {
		now = e.lastTS.Add(time.Microsecond)
	}
	e.lastTS = now
	return now
}

func (e *Engine) count(fn func(*Stats)) {
	e.mu.Lock()
	fn(&e.stats)
	e.mu.Unlock()
}
