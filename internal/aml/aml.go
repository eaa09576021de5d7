// Package aml runs anti-money-laundering screening checks as supervised
// background tasks. Each check walks the state machine
//
//	Idle -> Initiated -> Pending -> Done | Failed
//
// with a per-attempt timeout, bounded retries, and a cancellation
// transition back to Idle. Transitions are persisted through a StatusStore
// so the lead record always reflects the current state.
package aml

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bfsi-los-backend/internal/domain/lead"
)

var (
	ErrAlreadyRunning = errors.New("aml check already in progress")
	ErrNotRunning     = errors.New("no aml check in progress")
)

// Request carries the identity being screened.
type Request struct {
	LeadID       uint64
	Target       lead.AMLTarget
	BusinessName string
	CIN          string
	// Directors is only consulted for the director target.
	Directors []lead.Director
}

type Result struct {
	Passed bool
	Detail string
}

// Verifier is the external screening provider. Implementations must honor
// ctx cancellation.
type Verifier interface {
	Screen(ctx context.Context, req Request) (Result, error)
}

// StatusStore persists state transitions; satisfied by lead.Repository.
type StatusStore interface {
	SetAMLStatus(ctx context.Context, id uint64, target lead.AMLTarget, status lead.AMLStatus) error
}

type Config struct {
	AttemptTimeout time.Duration
	MaxAttempts    int
}

func (c Config) withDefaults() Config {
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = 30 * time.Second
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	return c
}

type checkKey struct {
	leadID uint64
	target lead.AMLTarget
}

// Coordinator supervises at most one running check per (lead, target).
type Coordinator struct {
	verifier Verifier
	store    StatusStore
	cfg      Config

	mu      sync.Mutex
	running map[checkKey]context.CancelFunc
	wg      sync.WaitGroup
}

func NewCoordinator(v Verifier, store StatusStore, cfg Config) *Coordinator {
	return &Coordinator{
		verifier: v,
		store:    store,
		cfg:      cfg.withDefaults(),
		running:  make(map[checkKey]context.CancelFunc),
	}
}

// Submit moves the check to Initiated and starts the screening task.
// A second submit while one is running is rejected.
func (c *Coordinator) Submit(ctx context.Context, req Request) error {
	key := checkKey{leadID: req.LeadID, target: req.Target}

	c.mu.Lock()
	if _, ok := c.running[key]; ok {
		c.mu.Unlock()
		return ErrAlreadyRunning
	}
	runCtx, cancel := context.WithCancel(context.Background())
	c.running[key] = cancel
	c.mu.Unlock()

	if err := c.store.SetAMLStatus(ctx, req.LeadID, req.Target, lead.AMLInitiated); err != nil {
		c.clear(key)
		return err
	}

	c.wg.Add(1)
	go c.run(runCtx, key, req)
	return nil
}

// Cancel aborts a running check and transitions it back to Idle.
func (c *Coordinator) Cancel(ctx context.Context, leadID uint64, target lead.AMLTarget) error {
	key := checkKey{leadID: leadID, target: target}

	c.mu.Lock()
	cancel, ok := c.running[key]
	c.mu.Unlock()
	if !ok {
		return ErrNotRunning
	}
	cancel()
	return c.store.SetAMLStatus(ctx, leadID, target, lead.AMLIdle)
}

// Shutdown cancels every running check and waits for the workers.
func (c *Coordinator) Shutdown() {
	c.mu.Lock()
	for _, cancel := range c.running {
		cancel()
	}
	c.mu.Unlock()
	c.wg.Wait()
}

func (c *Coordinator) run(ctx context.Context, key checkKey, req Request) {
	defer c.wg.Done()
	defer c.clear(key)

	_ = c.store.SetAMLStatus(ctx, req.LeadID, req.Target, lead.AMLPending)

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.AttemptTimeout)
		res, err := c.verifier.Screen(attemptCtx, req)
		cancel()

		if err == nil {
			final := lead.AMLDone
			if !res.Passed {
				final = lead.AMLFailed
			}
			_ = c.store.SetAMLStatus(context.Background(), req.LeadID, req.Target, final)
			return
		}
		if ctx.Err() != nil {
			// canceled: Cancel() already wrote Idle
			return
		}
		lastErr = err
	}

	// retries exhausted
	_ = lastErr
	_ = c.store.SetAMLStatus(context.Background(), req.LeadID, req.Target, lead.AMLFailed)
}

func (c *Coordinator) clear(key checkKey) {
	c.mu.Lock()
	delete(c.running, key)
	c.mu.Unlock()
}

// ReadyToSubmit is the intake submit guard: the company check must be done
// and the director check must be either not required (idle) or done.
func ReadyToSubmit(company, director lead.AMLStatus) bool {
	if company != lead.AMLDone {
		return false
	}
	return director == lead.AMLIdle || director == lead.AMLDone
}

func ParseTarget(s string) (lead.AMLTarget, error) {
	switch lead.AMLTarget(s) {
	case lead.AMLTargetCompany:
		return lead.AMLTargetCompany, nil
	case lead.AMLTargetDirector:
		return lead.AMLTargetDirector, nil
	}
	return "", fmt.Errorf("unknown aml target %q", s)
}
