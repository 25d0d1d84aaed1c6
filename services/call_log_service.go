package services

import (
	"call-lab/contract"
	"call-lab/domain"
	"call-lab/observability"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const DefaultMaxParallelWrites = 8

// CallLogService replicates one call event into the call history of every
// participant.
//
// Writes for different owners run in parallel. A failed write never stops
// the others: every failure is collected and returned joined.
type CallLogService struct {
	repository  contract.ICallLogRepository
	cache       contract.ICallLogCache
	indexer     contract.ICallLogIndexer
	maxParallel int
	metrics     *observability.CallMetrics
	log         *slog.Logger
}

func NewCallLogService(
	repository contract.ICallLogRepository,
	cache contract.ICallLogCache,
	indexer contract.ICallLogIndexer,
	maxParallel int,
	metrics *observability.CallMetrics,
	log *slog.Logger,
) *CallLogService {
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallelWrites
	}
	return &CallLogService{
		repository:  repository,
		cache:       cache,
		indexer:     indexer,
		maxParallel: maxParallel,
		metrics:     metrics,
		log:         log,
	}
}

func (s *CallLogService) RecordCall(ctx context.Context, call domain.CallEvent) error {
	if call.At.IsZero() {
		call.At = time.Now().UTC()
	}
	records, err := domain.BuildCallLogs(call)
	if err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)
	g.SetLimit(s.maxParallel)
	for _, owned := range records {
		g.Go(func() error {
			if err := s.write(ctx, owned, owned.OwnerID == call.Owner.ID); err != nil {
				s.metrics.RecordFailed(err)
				s.log.Error("Call log write failed", "owner", owned.OwnerID, "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("owner %s: %w", owned.OwnerID, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	s.log.Info("Call recorded", "room", call.ConversationID, "records", len(records), "failed", len(errs))
	return errors.Join(errs...)
}

// write upserts the owner document before appending, so the append always
// has a parent. The owner's own history is read back and cached afterwards.
func (s *CallLogService) write(ctx context.Context, owned domain.OwnedRecord, isOwner bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.repository.UpsertOwner(owned.OwnerID); err != nil {
		return fmt.Errorf("upsert owner: %w", err)
	}
	id, err := s.repository.AppendRecord(owned.OwnerID, owned.Record)
	if err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	s.metrics.IncrRecordsWritten()
	record := owned.Record
	record.ID = id

	if s.indexer != nil {
		if err := s.indexer.Index(ctx, owned.OwnerID, record); err != nil {
			s.log.Warn("Failed to index call log", "owner", owned.OwnerID, "record", id, "error", err)
		}
	}
	if !isOwner {
		return nil
	}
	history, err := s.repository.ListRecords(owned.OwnerID)
	if err != nil {
		return fmt.Errorf("read back: %w", err)
	}
	if err = s.cache.SaveCallLogs(owned.OwnerID, history); err != nil {
		return fmt.Errorf("cache call logs: %w", err)
	}
	return nil
}
