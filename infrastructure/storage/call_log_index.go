package storage

import (
	"call-lab/domain"
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
)

const (
	indexOwner    = "owner"
	indexRecordID = "record_id"
	indexName     = "name"
	indexLabel    = "label"
	indexRoom     = "room"
)

// CallLogIndex makes call history searchable by participant name and label.
// Documents are keyed by owner and record id, so re-indexing a record replaces it.
type CallLogIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewCallLogIndex(writer *bluge.Writer, log *slog.Logger) *CallLogIndex {
	return &CallLogIndex{writer: writer, log: log}
}

func (i *CallLogIndex) Index(ctx context.Context, ownerID string, record domain.CallLogRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkOwner(ownerID); err != nil {
		return err
	}
	doc := bluge.NewDocument(fmt.Sprintf("%s/%s", ownerID, record.ID))
	doc.AddField(bluge.NewKeywordField(indexOwner, ownerID))
	doc.AddField(bluge.NewKeywordField(indexRecordID, record.ID).StoreValue())
	doc.AddField(bluge.NewKeywordField(indexRoom, record.RoomID))
	doc.AddField(bluge.NewTextField(indexLabel, record.Label))
	for _, name := range record.Names {
		doc.AddField(bluge.NewTextField(indexName, name))
	}
	return i.writer.Update(doc.ID(), doc)
}

// Search returns the ids of the owner's records whose participant names or
// label match text, best match first.
func (i *CallLogIndex) Search(ctx context.Context, ownerID, text string, limit int) ([]string, error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	matches := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(text).SetField(indexName)).
		AddShould(bluge.NewMatchQuery(text).SetField(indexLabel)).
		SetMinShould(1)
	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(ownerID).SetField(indexOwner)).
		AddMust(matches)

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}
	var ids []string
	match, err := iterator.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == indexRecordID {
				ids = append(ids, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i *CallLogIndex) Close() error {
	return i.writer.Close()
}
