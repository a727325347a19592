package notify

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/amaumene/whattowatch/internal/domain"
)

const defaultQueueSize = 32

type Level string

const LevelError Level = "error"

type Toast struct {
	Level   Level
	Message string
	At      time.Time
}

// LogNotifier writes toasts to a logrus logger.
type LogNotifier struct {
	logger log.FieldLogger
}

func NewLogNotifier(logger log.FieldLogger) *LogNotifier {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Error(message string) {
	n.logger.WithField("toast", LevelError).Error(message)
}

// Queue buffers toasts for a UI loop to drain. When the buffer is full the
// oldest pending toast is dropped.
type Queue struct {
	toasts chan Toast
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{toasts: make(chan Toast, size)}
}

func (q *Queue) Error(message string) {
	toast := Toast{Level: LevelError, Message: message, At: time.Now()}
	for {
		select {
		case q.toasts <- toast:
			return
		default:
		}
		select {
		case dropped := <-q.toasts:
			log.WithField("message", dropped.Message).Debug("toast queue full, dropping oldest")
		default:
		}
	}
}

func (q *Queue) Toasts() <-chan Toast {
	return q.toasts
}

// Drain returns the pending toasts without blocking.
func (q *Queue) Drain() []Toast {
	var toasts []Toast
	for {
		select {
		case toast := <-q.toasts:
			toasts = append(toasts, toast)
		default:
			return toasts
		}
	}
}

// Multi fans a toast out to several notifiers.
type Multi []domain.Notifier

func (m Multi) Error(message string) {
	for _, n := range m {
		n.Error(message)
	}
}

// Recorder keeps every toast in memory.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

func (r *Recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, Toast{Level: LevelError, Message: message, At: time.Now()})
}

func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages := make([]string, len(r.toasts))
	for i, toast := range r.toasts {
		messages[i] = toast.Message
	}
	return messages
}
