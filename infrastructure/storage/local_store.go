package storage

import (
	"call-lab/domain"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Keys written by the chat client when a user signs in.
const (
	UserIDKey      = "mx_user_id"
	DisplayNameKey = "mx_profile_displayname"
	AvatarKey      = "mx_user_avatar"
	callLogsKey    = "callLogs"
	localPrefix    = "local:"
)

// LocalStore is the device-local key-value storage shared with the chat
// client. It is the identity source of the calling core and holds the
// cached copy of the owner's call history.
type LocalStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewLocalStore(db *badger.DB, log *slog.Logger) *LocalStore {
	return &LocalStore{db: db, log: log}
}

// Get returns the stored value, or an empty string when the key is absent.
func (l *LocalStore) Get(key string) (string, error) {
	var value string
	err := l.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(localPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	return value, err
}

func (l *LocalStore) Set(key, value string) error {
	return l.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(localPrefix+key), []byte(value))
	})
}

// CurrentUser reads the signed-in user. Missing keys read as empty strings.
func (l *LocalStore) CurrentUser() (domain.CurrentUser, error) {
	var user domain.CurrentUser
	var err error
	if user.UserID, err = l.Get(UserIDKey); err != nil {
		return domain.CurrentUser{}, err
	}
	if user.DisplayName, err = l.Get(DisplayNameKey); err != nil {
		return domain.CurrentUser{}, err
	}
	if user.AvatarRef, err = l.Get(AvatarKey); err != nil {
		return domain.CurrentUser{}, err
	}
	return user, nil
}

// SignIn stores the identity the way the chat client does after login.
func (l *LocalStore) SignIn(user domain.CurrentUser) error {
	return l.db.Update(func(txn *badger.Txn) error {
		for key, value := range map[string]string{
			UserIDKey:      user.UserID,
			DisplayNameKey: user.DisplayName,
			AvatarKey:      user.AvatarRef,
		} {
			if err := txn.Set([]byte(localPrefix+key), []byte(value)); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveCallLogs replaces the cached call history of the owner with records,
// encoded as a JSON array of call-log documents.
func (l *LocalStore) SaveCallLogs(ownerID string, records []domain.CallLogRecord) error {
	list := &structpb.ListValue{}
	for _, record := range records {
		doc, err := fromCallLogRecord(record)
		if err != nil {
			return err
		}
		list.Values = append(list.Values, structpb.NewStructValue(doc))
	}
	bytes, err := protojson.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode call logs: %w", err)
	}
	l.log.Debug("Caching call logs", "owner", ownerID, "count", len(records))
	return l.Set(cacheKey(ownerID), string(bytes))
}

// CallLogs returns the cached call history of the owner.
func (l *LocalStore) CallLogs(ownerID string) ([]domain.CallLogRecord, error) {
	raw, err := l.Get(cacheKey(ownerID))
	if err != nil || raw == "" {
		return nil, err
	}
	var list structpb.ListValue
	if err = protojson.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode call logs: %w", err)
	}
	records := make([]domain.CallLogRecord, 0, len(list.GetValues()))
	for _, value := range list.GetValues() {
		record, err := toCallLogRecord(value.GetStructValue())
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func cacheKey(ownerID string) string {
	return callLogsKey + ":" + ownerID
}
