package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/repository"
)

const (
	logBufferSize    = 1024
	logFlushInterval = 2 * time.Second
	logFlushBatch    = 100
)

// LoggingService persists request logs to MongoDB.
type LoggingService interface {
	// CreateLog stores a single log entry synchronously.
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	// Enqueue buffers a log entry for asynchronous batch persistence.
	// Entries are dropped, not blocked on, when the buffer is full.
	Enqueue(entry *model.LogEntry)
	// Close flushes buffered entries and stops the background writer.
	Close()
}

// LoggingServiceImpl implements LoggingService with a buffered background
// writer so request handling never waits on the logs collection.
type LoggingServiceImpl struct {
	repo    repository.LogsRepositoryInterface
	entries chan *model.LogEntry
	done    chan struct{}
}

// NewLoggingService creates a new logging service and starts its writer.
func NewLoggingService(repo repository.LogsRepositoryInterface) *LoggingServiceImpl {
	s := &LoggingServiceImpl{
		repo:    repo,
		entries: make(chan *model.LogEntry, logBufferSize),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// CreateLog stores a single log entry synchronously.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return s.repo.Create(ctx, entry)
}

// Enqueue buffers a log entry for the background writer.
func (s *LoggingServiceImpl) Enqueue(entry *model.LogEntry) {
	select {
	case s.entries <- entry:
	default:
		log.Warn().Msg("log buffer full, dropping entry")
	}
}

// Close flushes buffered entries and stops the background writer.
func (s *LoggingServiceImpl) Close() {
	close(s.entries)
	<-s.done
}

// run batches buffered entries and writes them on a timer or when the batch
// fills, whichever comes first.
func (s *LoggingServiceImpl) run() {
	defer close(s.done)

	ticker := time.NewTicker(logFlushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, logFlushBatch)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.repo.CreateMany(ctx, batch); err != nil {
			log.Error().Err(err).Int("count", len(batch)).Msg("failed to persist log batch")
		}
		cancel()
		batch = batch[:0]
	}

	for {
		select {
		case entry, ok := <-s.entries:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= logFlushBatch {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
