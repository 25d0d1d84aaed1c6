package services

import (
	"call-lab/contract"
	"call-lab/domain"
	"context"
	"log/slog"

	"github.com/samber/lo"
)

const defaultSearchLimit = 20

// HistoryService is the read side of the call history. Owner ids may be
// given raw; they are normalized before any lookup.
type HistoryService struct {
	repository contract.ICallLogRepository
	searcher   contract.ICallLogSearcher
	log        *slog.Logger
}

func NewHistoryService(repository contract.ICallLogRepository, searcher contract.ICallLogSearcher,
	log *slog.Logger) *HistoryService {
	return &HistoryService{repository: repository, searcher: searcher, log: log}
}

// List returns the owner's records, newest first.
func (s *HistoryService) List(ownerID string) ([]domain.CallLogRecord, error) {
	records, err := s.repository.ListRecords(domain.Normalize(ownerID))
	if err != nil {
		return nil, err
	}
	return newestFirst(records), nil
}

// Search returns the owner's records matching text, best match first.
func (s *HistoryService) Search(ctx context.Context, ownerID, text string, limit int) ([]domain.CallLogRecord, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	owner := domain.Normalize(ownerID)
	ids, err := s.searcher.Search(ctx, owner, text, limit)
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	records, err := s.repository.ListRecords(owner)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(records, func(r domain.CallLogRecord) string { return r.ID })
	found := make([]domain.CallLogRecord, 0, len(ids))
	for _, id := range ids {
		if record, ok := byID[id]; ok {
			found = append(found, record)
		} else {
			s.log.Debug("Indexed record not found", "owner", owner, "record", id)
		}
	}
	return found, nil
}

// Watch calls onChange with the owner's records, newest first, now and after
// every change, until the returned function is called.
func (s *HistoryService) Watch(ctx context.Context, ownerID string,
	onChange func([]domain.CallLogRecord)) (func(), error) {
	return s.repository.SubscribeRecords(ctx, domain.Normalize(ownerID), func(records []domain.CallLogRecord) {
		onChange(newestFirst(records))
	})
}

func newestFirst(records []domain.CallLogRecord) []domain.CallLogRecord {
	reversed := make([]domain.CallLogRecord, len(records))
	copy(reversed, records)
	return lo.Reverse(reversed)
}
