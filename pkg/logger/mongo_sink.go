// MongoSink is an slog.Handler that asynchronously mirrors log records into
// a MongoDB collection, alongside whatever handler is already active.
//
//   - Records are enqueued into a buffered channel; a full queue drops the
//     record. Logging must never block the request path.
//   - A single goroutine drains the queue and writes batches with
//     InsertMany.
//   - Close flushes pending records. The queue channel is never closed;
//     shutdown is signalled on a separate channel, so a record logged after
//     or concurrently with Close is dropped instead of panicking.
//
// The sink borrows a collection from the application's own database handle
// rather than opening a second connection.
package logger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	sinkQueueSize = 4096
	sinkBatchSize = 50
	sinkDrainTick = 2 * time.Second
)

type logRecord struct {
	Time      time.Time `bson:"time"`
	Level     string    `bson:"level"`
	Msg       string    `bson:"msg"`
	RequestID string    `bson:"request_id,omitempty"`
	Attrs     bson.M    `bson:"attrs,omitempty"`
}

type MongoSink struct {
	next    slog.Handler
	col     *mongo.Collection
	queue   chan logRecord
	stop    chan struct{}
	drained chan struct{}
	closer  *sync.Once
	attrs   []slog.Attr
}

// AttachMongoSink rewires the package logger so records are mirrored to col.
// Returns the sink so the caller can Close it on shutdown.
func AttachMongoSink(col *mongo.Collection) *MongoSink {
	sink := NewMongoSink(L.Handler(), col)
	L = slog.New(sink)
	slog.SetDefault(L)
	return sink
}

// NewMongoSink wraps next so every record it accepts is also queued for col.
// The caller must Close the sink on shutdown.
func NewMongoSink(next slog.Handler, col *mongo.Collection) *MongoSink {
	s := &MongoSink{
		next:    next,
		col:     col,
		queue:   make(chan logRecord, sinkQueueSize),
		stop:    make(chan struct{}),
		drained: make(chan struct{}),
		closer:  &sync.Once{},
	}
	go s.drain()
	return s
}

func (s *MongoSink) Enabled(ctx context.Context, lvl slog.Level) bool {
	return s.next.Enabled(ctx, lvl)
}

func (s *MongoSink) Handle(ctx context.Context, r slog.Record) error {
	doc := logRecord{Time: r.Time, Level: r.Level.String(), Msg: r.Message, Attrs: bson.M{}}

	collect := func(a slog.Attr) {
		if a.Key == "request_id" {
			doc.RequestID = a.Value.String()
			return
		}
		doc.Attrs[a.Key] = a.Value.Any()
	}
	for _, a := range s.attrs {
		collect(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		collect(a)
		return true
	})

	select {
	case <-s.stop:
		// sink shut down, the record still reaches the inner handler
	default:
		select {
		case s.queue <- doc:
		default:
			// queue full, drop
		}
	}
	return s.next.Handle(ctx, r)
}

func (s *MongoSink) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(s.attrs)+len(attrs))
	merged = append(merged, s.attrs...)
	merged = append(merged, attrs...)
	return &MongoSink{
		next:    s.next.WithAttrs(attrs),
		col:     s.col,
		queue:   s.queue,
		stop:    s.stop,
		drained: s.drained,
		closer:  s.closer,
		attrs:   merged,
	}
}

func (s *MongoSink) WithGroup(name string) slog.Handler {
	clone := *s
	clone.next = s.next.WithGroup(name)
	return &clone
}

// Close flushes queued records and stops the drain goroutine. Idempotent;
// derived handlers from WithAttrs/WithGroup share the same lifecycle.
func (s *MongoSink) Close() {
	s.closer.Do(func() { close(s.stop) })
	<-s.drained
}

func (s *MongoSink) drain() {
	defer close(s.drained)

	ticker := time.NewTicker(sinkDrainTick)
	defer ticker.Stop()

	batch := make([]interface{}, 0, sinkBatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _ = s.col.InsertMany(ctx, batch)
		cancel()
		batch = batch[:0]
	}

	for {
		select {
		case doc := <-s.queue:
			batch = append(batch, doc)
			if len(batch) >= sinkBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stop:
			// take whatever is already buffered, then final flush
			for {
				select {
				case doc := <-s.queue:
					batch = append(batch, doc)
					if len(batch) >= sinkBatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}
