package storage

import (
	"call-lab/domain"
	"fmt"
	"time"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/structpb"
)

// Field names of a call-log document. They match the documents written by
// the mobile and web clients so every reader sees the same shape.
const (
	fieldID           = "id"
	fieldImageURL     = "imageUrl"
	fieldIncoming     = "isIncoming"
	fieldMissed       = "isMissedCall"
	fieldVideo        = "isVideoCall"
	fieldName         = "name"
	fieldRoomID       = "roomId"
	fieldUserCalledID = "userCalledId"
	fieldLabel        = "label"
	fieldCreatedAt    = "createdAt"
)

func fromCallLogRecord(record domain.CallLogRecord) (*structpb.Struct, error) {
	doc, err := structpb.NewStruct(map[string]any{
		fieldID:           record.ID,
		fieldImageURL:     toAnyList(record.ImageURLs),
		fieldIncoming:     record.Incoming,
		fieldMissed:       record.Missed,
		fieldVideo:        record.Video,
		fieldName:         toAnyList(record.Names),
		fieldRoomID:       record.RoomID,
		fieldUserCalledID: toAnyList(record.UserCalledIDs),
		fieldLabel:        record.Label,
		fieldCreatedAt:    record.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("call log document: %w", err)
	}
	return doc, nil
}

func toCallLogRecord(doc *structpb.Struct) (domain.CallLogRecord, error) {
	fields := doc.GetFields()
	record := domain.CallLogRecord{
		ID:            fields[fieldID].GetStringValue(),
		Names:         toStrings(fields[fieldName]),
		ImageURLs:     toStrings(fields[fieldImageURL]),
		Incoming:      fields[fieldIncoming].GetBoolValue(),
		Missed:        fields[fieldMissed].GetBoolValue(),
		Video:         fields[fieldVideo].GetBoolValue(),
		RoomID:        fields[fieldRoomID].GetStringValue(),
		UserCalledIDs: toStrings(fields[fieldUserCalledID]),
		Label:         fields[fieldLabel].GetStringValue(),
	}
	if raw := fields[fieldCreatedAt].GetStringValue(); raw != "" {
		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return domain.CallLogRecord{}, fmt.Errorf("call log %s: %w", record.ID, err)
		}
		record.CreatedAt = at
	}
	return record, nil
}

func toAnyList(values []string) []any {
	return lo.Map(values, func(v string, _ int) any { return v })
}

func toStrings(value *structpb.Value) []string {
	values := value.GetListValue().GetValues()
	if len(values) == 0 {
		return nil
	}
	return lo.Map(values, func(v *structpb.Value, _ int) string { return v.GetStringValue() })
}
