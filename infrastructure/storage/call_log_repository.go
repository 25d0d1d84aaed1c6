package storage

import (
	"bytes"
	"call-lab/domain"
	cerrors "call-lab/errors"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dgraph-io/badger/v4"
	badgerpb "github.com/dgraph-io/badger/v4/pb"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	logsCollection  = "logs"
	callsCollection = "calls"
	fieldOwnerID    = "ownerId"

	conflictInitialInterval = 2 * time.Millisecond
	conflictMaxInterval     = 100 * time.Millisecond
	conflictMaxElapsedTime  = 10 * time.Second

	subscriptionsCollection    = "subscriptions"
	subscribeHandshakeInterval = 10 * time.Millisecond
	subscribeTimeout           = 5 * time.Second
)

// CallLogRepository is a path-addressed document store on top of BadgerDB.
// Keys mirror the document paths:
//
//	logs/{ownerId}                  parent document of an owner
//	logs/{ownerId}/calls/{recordId} one immutable call record
//
// Record ids are UUIDv7 so a prefix scan returns records in append order.
type CallLogRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCallLogRepository(db *badger.DB, log *slog.Logger) *CallLogRepository {
	return &CallLogRepository{db: db, log: log}
}

func ownerKey(ownerID string) []byte {
	return []byte(fmt.Sprintf("%s/%s", logsCollection, ownerID))
}

func callsPrefix(ownerID string) []byte {
	return []byte(fmt.Sprintf("%s/%s/%s/", logsCollection, ownerID, callsCollection))
}

func recordKey(ownerID, recordID string) []byte {
	return append(callsPrefix(ownerID), recordID...)
}

func handshakeKey(ownerID string) []byte {
	return []byte(fmt.Sprintf("%s/%s/%s/%s", logsCollection, ownerID, subscriptionsCollection, uuid.NewString()))
}

// checkOwner rejects ids that are not normalized: they could escape the
// owner's key space.
func checkOwner(ownerID string) error {
	if ownerID == "" || domain.Normalize(ownerID) != ownerID {
		return fmt.Errorf("%w: %q", cerrors.ErrInvalidOwner, ownerID)
	}
	return nil
}

// UpsertOwner makes sure the owner's parent document exists.
// Existing fields are never overwritten, and an existing complete document
// is not written again.
func (r *CallLogRepository) UpsertOwner(ownerID string) error {
	existing, err := r.GetOwner(ownerID)
	if err != nil {
		return err
	}
	if hasFields(existing, fieldOwnerID, fieldCreatedAt) {
		return nil
	}
	return r.merge(ownerID, nil, map[string]any{
		fieldOwnerID:   ownerID,
		fieldCreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func hasFields(doc map[string]any, names ...string) bool {
	for _, name := range names {
		if _, ok := doc[name]; !ok {
			return false
		}
	}
	return true
}

// MergeOwner writes the given fields into the owner's parent document,
// creating it if needed and keeping every other field untouched.
func (r *CallLogRepository) MergeOwner(ownerID string, fields map[string]any) error {
	return r.merge(ownerID, fields, nil)
}

// GetOwner returns the owner's parent document, or nil when it does not exist.
func (r *CallLogRepository) GetOwner(ownerID string) (map[string]any, error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	var doc *structpb.Struct
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		doc, err = getDocument(txn, ownerKey(ownerID))
		return err
	})
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.AsMap(), nil
}

// AppendRecord stores a new record under the owner and returns its id.
// The record's ID is always assigned here; CreatedAt defaults to now.
func (r *CallLogRepository) AppendRecord(ownerID string, record domain.CallLogRecord) (string, error) {
	if err := checkOwner(ownerID); err != nil {
		return "", err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	record.ID = id.String()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	doc, err := fromCallLogRecord(record)
	if err != nil {
		return "", err
	}
	data, err := proto.Marshal(doc)
	if err != nil {
		return "", err
	}
	err = r.update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(ownerID, record.ID), data)
	})
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// ListRecords returns every record of the owner, oldest first.
func (r *CallLogRepository) ListRecords(ownerID string) ([]domain.CallLogRecord, error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	var records []domain.CallLogRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := callsPrefix(ownerID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var doc structpb.Struct
			err := it.Item().Value(func(val []byte) error {
				return proto.Unmarshal(val, &doc)
			})
			if err != nil {
				return err
			}
			record, err := toCallLogRecord(&doc)
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// SubscribeRecords calls onChange with the owner's full record list right
// away and again after every change to it, until the returned function is
// called or ctx is done. Calls to onChange never overlap. Changes made after
// SubscribeRecords returns are never missed.
func (r *CallLogRepository) SubscribeRecords(ctx context.Context, ownerID string,
	onChange func([]domain.CallLogRecord)) (func(), error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	subCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	registered := make(chan struct{})
	var once sync.Once
	var mu sync.Mutex
	notify := func() error {
		records, err := r.ListRecords(ownerID)
		if err != nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		onChange(records)
		return nil
	}

	handshake := handshakeKey(ownerID)
	go func() {
		defer close(done)
		err := r.db.Subscribe(subCtx, func(list *badger.KVList) error {
			changed := false
			for _, kv := range list.GetKv() {
				if bytes.Equal(kv.GetKey(), handshake) {
					once.Do(func() { close(registered) })
					continue
				}
				changed = true
			}
			if !changed {
				return nil
			}
			if err := notify(); err != nil {
				r.log.Error("Call log subscription refresh failed", "owner", ownerID, "error", err)
			}
			return nil
		}, []badgerpb.Match{{Prefix: callsPrefix(ownerID)}, {Prefix: handshake}})
		if err != nil && !errors.Is(err, context.Canceled) {
			r.log.Warn("Call log subscription ended", "owner", ownerID, "error", err)
		}
	}()

	unsubscribe := func() {
		cancel()
		<-done
	}
	if err := r.awaitSubscription(subCtx, handshake, registered, done); err != nil {
		unsubscribe()
		return nil, err
	}
	if err := notify(); err != nil {
		unsubscribe()
		return nil, err
	}
	return unsubscribe, nil
}

// awaitSubscription writes the handshake key until the subscriber sees it, then
// removes it. Badger registers subscribers asynchronously.
func (r *CallLogRepository) awaitSubscription(ctx context.Context, handshake []byte,
	registered, done <-chan struct{}) error {
	defer func() {
		if err := r.db.Update(func(txn *badger.Txn) error { return txn.Delete(handshake) }); err != nil {
			r.log.Warn("Failed to remove subscription handshake", "error", err)
		}
	}()
	ticker := time.NewTicker(subscribeHandshakeInterval)
	defer ticker.Stop()
	timeout := time.After(subscribeTimeout)
	for {
		if err := r.db.Update(func(txn *badger.Txn) error { return txn.Set(handshake, nil) }); err != nil {
			return err
		}
		select {
		case <-registered:
			return nil
		case <-done:
			return fmt.Errorf("call log subscription stopped before it started")
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout:
			return fmt.Errorf("call log subscription not registered after %s", subscribeTimeout)
		case <-ticker.C:
		}
	}
}

func (r *CallLogRepository) merge(ownerID string, fields, defaults map[string]any) error {
	if err := checkOwner(ownerID); err != nil {
		return err
	}
	patch, err := structpb.NewStruct(fields)
	if err != nil {
		return err
	}
	missing, err := structpb.NewStruct(defaults)
	if err != nil {
		return err
	}
	key := ownerKey(ownerID)
	return r.update(func(txn *badger.Txn) error {
		doc, err := getDocument(txn, key)
		if err != nil {
			return err
		}
		changed := doc == nil
		if doc == nil {
			doc = &structpb.Struct{}
		}
		if doc.Fields == nil {
			doc.Fields = make(map[string]*structpb.Value)
		}
		for k, v := range missing.GetFields() {
			if _, ok := doc.Fields[k]; !ok {
				doc.Fields[k] = v
				changed = true
			}
		}
		for k, v := range patch.GetFields() {
			if !proto.Equal(doc.Fields[k], v) {
				doc.Fields[k] = v
				changed = true
			}
		}
		// A read-only transaction never conflicts
		if !changed {
			return nil
		}
		data, err := proto.Marshal(doc)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// update runs fn in a read-write transaction. Conflicts with a concurrent
// writer are retried with a jittered exponential backoff, any other error is
// returned at once.
func (r *CallLogRepository) update(fn func(txn *badger.Txn) error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = conflictInitialInterval
	policy.MaxInterval = conflictMaxInterval
	policy.MaxElapsedTime = conflictMaxElapsedTime
	return backoff.RetryNotify(func() error {
		err := r.db.Update(fn)
		if err != nil && !errors.Is(err, badger.ErrConflict) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, next time.Duration) {
		r.log.Debug("Transaction conflict, retrying", "retry_in", next)
	})
}

func getDocument(txn *badger.Txn, key []byte) (*structpb.Struct, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var doc structpb.Struct
	if err = item.Value(func(val []byte) error {
		return proto.Unmarshal(val, &doc)
	}); err != nil {
		return nil, err
	}
	return &doc, nil
}
