package storage

import (
	"call-lab/domain"
	"context"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"
)

func openTestIndex(t *testing.T) *CallLogIndex {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	require.NoError(t, err)
	index := NewCallLogIndex(writer, testLogger())
	t.Cleanup(func() { _ = index.Close() })
	return index
}

func TestCallLogIndex_SearchByNameAndLabel(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index := openTestIndex(t)

	req.NoError(index.Index(ctx, "alice", domain.CallLogRecord{
		ID: "r1", Names: []string{"Bob Marley"}, Label: "Outgoing Audio Call", RoomID: "!a:x",
	}))
	req.NoError(index.Index(ctx, "alice", domain.CallLogRecord{
		ID: "r2", Names: []string{"Carol", "Dave"}, Label: "Incoming Video Group Call", RoomID: "!b:x",
	}))
	req.NoError(index.Index(ctx, "bob", domain.CallLogRecord{
		ID: "r3", Names: []string{"Carol"}, Label: "Incoming Audio Call", RoomID: "!c:x",
	}))

	ids, err := index.Search(ctx, "alice", "bob", 10)
	req.NoError(err)
	req.Equal([]string{"r1"}, ids)

	ids, err = index.Search(ctx, "alice", "carol", 10)
	req.NoError(err)
	req.Equal([]string{"r2"}, ids)

	ids, err = index.Search(ctx, "alice", "video", 10)
	req.NoError(err)
	req.Equal([]string{"r2"}, ids)

	ids, err = index.Search(ctx, "bob", "carol", 10)
	req.NoError(err)
	req.Equal([]string{"r3"}, ids)

	ids, err = index.Search(ctx, "alice", "nobody", 10)
	req.NoError(err)
	req.Empty(ids)
}

func TestCallLogIndex_ReindexReplaces(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index := openTestIndex(t)

	record := domain.CallLogRecord{ID: "r1", Names: []string{"Bob"}, Label: "Outgoing Audio Call"}
	req.NoError(index.Index(ctx, "alice", record))
	record.Names = []string{"Robert"}
	req.NoError(index.Index(ctx, "alice", record))

	ids, err := index.Search(ctx, "alice", "bob", 10)
	req.NoError(err)
	req.Empty(ids)

	ids, err = index.Search(ctx, "alice", "robert", 10)
	req.NoError(err)
	req.Equal([]string{"r1"}, ids)
}

func TestCallLogIndex_RejectsUnnormalizedOwner(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	err := index.Index(context.Background(), "@alice:x", domain.CallLogRecord{ID: "r1"})
	req.Error(err)
}
