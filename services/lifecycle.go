package services

import (
	"log"
	"sync"
	"time"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"

	"gorm.io/gorm"
)

// LifecycleStep is one scheduled transition of the delivery sequence.
type LifecycleStep struct {
	Status  entity.OrderStatus
	Delay   time.Duration
	Message string
}

// DefaultSteps returns the expected-path progression. Delays are constants,
// not context-sensitive; production uses them as-is, tests inject tiny ones.
func DefaultSteps() []LifecycleStep {
	return []LifecycleStep{
		{entity.StatusConfirmed, 2 * time.Second, "Order confirmed by restaurant"},
		{entity.StatusPreparing, 10 * time.Second, "Restaurant is preparing your order"},
		{entity.StatusReady, 15 * time.Second, "Order is ready for pickup"},
		{entity.StatusAssigned, 5 * time.Second, "Courier assigned"},
		{entity.StatusPickedUp, 8 * time.Second, "Courier picked up your order"},
		{entity.StatusDelivered, 12 * time.Second, "Order delivered"},
	}
}

// DefaultKickoff is the pause between order creation and the first step.
const DefaultKickoff = 2 * time.Second

// Task is the cancellable handle returned by Schedule.
type Task struct {
	OrderID uint

	cancel chan struct{}
	done   chan struct{}
	once   sync.Once
}

// Done closes once the task has finished, whether it ran to delivered, was
// cancelled, or lost a transition guard.
func (t *Task) Done() <-chan struct{} { return t.done }

func (t *Task) Cancel() { t.once.Do(func() { close(t.cancel) }) }

// LifecycleScheduler advances orders through the fixed status sequence on
// timers, appending a timeline event per step. Each transition is guarded on
// the expected current status: a cancelled or vanished order makes the task
// stop silently.
type LifecycleScheduler struct {
	DB     *gorm.DB
	Orders *repository.OrderRepository

	kickoff time.Duration
	steps   []LifecycleStep

	mu    sync.Mutex
	tasks map[uint]*Task

	onTransition []func(orderID uint, ev entity.OrderEvent)
}

func NewLifecycleScheduler(db *gorm.DB, orders *repository.OrderRepository, kickoff time.Duration, steps []LifecycleStep) *LifecycleScheduler {
	if steps == nil {
		steps = DefaultSteps()
	}
	return &LifecycleScheduler{
		DB:      db,
		Orders:  orders,
		kickoff: kickoff,
		steps:   steps,
		tasks:   make(map[uint]*Task),
	}
}

// OnTransition registers a hook fired after each applied step (outside the
// transaction). Used for the live tracking stream and courier assignment.
func (s *LifecycleScheduler) OnTransition(fn func(orderID uint, ev entity.OrderEvent)) {
	s.onTransition = append(s.onTransition, fn)
}

// Schedule starts progression for a freshly created (pending) order and
// returns its cancellable task. Scheduling an order twice returns the
// existing task.
func (s *LifecycleScheduler) Schedule(orderID uint) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[orderID]; ok {
		return t
	}
	t := &Task{
		OrderID: orderID,
		cancel:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	s.tasks[orderID] = t
	go s.run(t)
	return t
}

// Cancel aborts pending steps for the order. Returns false when no task is
// live (already finished or never scheduled).
func (s *LifecycleScheduler) Cancel(orderID uint) bool {
	s.mu.Lock()
	t, ok := s.tasks[orderID]
	s.mu.Unlock()
	if !ok {
		return false
	}
	t.Cancel()
	return true
}

func (s *LifecycleScheduler) run(t *Task) {
	defer func() {
		s.mu.Lock()
		delete(s.tasks, t.OrderID)
		s.mu.Unlock()
		close(t.done)
	}()

	if !sleep(s.kickoff, t.cancel) {
		return
	}

	prev := entity.StatusPending
	for _, step := range s.steps {
		if !sleep(step.Delay, t.cancel) {
			return
		}
		ev, ok := s.apply(t.OrderID, prev, step)
		if !ok {
			return
		}
		for _, fn := range s.onTransition {
			fn(t.OrderID, ev)
		}
		prev = step.Status
	}
}

// apply performs one guarded transition plus its timeline append. A guard
// miss (order gone, cancelled, or already moved) ends the progression.
func (s *LifecycleScheduler) apply(orderID uint, from entity.OrderStatus, step LifecycleStep) (entity.OrderEvent, bool) {
	ev := entity.OrderEvent{OrderID: orderID, Status: step.Status, Message: step.Message}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Orders.AdvanceStatus(tx, orderID, from, step.Status)
		if err != nil {
			return err
		}
		if affected == 0 {
			return gorm.ErrRecordNotFound
		}
		return s.Orders.AppendEvent(tx, &ev)
	})
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("lifecycle: order %d %s -> %s failed: %v", orderID, from, step.Status, err)
		}
		return entity.OrderEvent{}, false
	}
	return ev, true
}

func sleep(d time.Duration, cancel <-chan struct{}) bool {
	if d <= 0 {
		select {
		case <-cancel:
			return false
		default:
			return true
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-cancel:
		return false
	}
}
