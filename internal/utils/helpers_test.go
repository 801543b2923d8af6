package utils_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/utils"
)

func TestToPBInboxItem(t *testing.T) {
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	item := entity.NewInboxItem(uuid.New(), uuid.New(), uuid.New(), "/blobs/a.pdf", now)

	pb := utils.ToPBInboxItem(item)
	assert.Equal(t, item.ID.String(), pb.Id)
	assert.Equal(t, item.FileID.String(), pb.FileId)
	assert.Equal(t, string(constants.InboxStateCreated), pb.State)
	assert.Equal(t, string(constants.StatusNew), pb.Status)
	assert.Equal(t, string(constants.StatusNew), pb.RawStatus)
	assert.Equal(t, "2026-03-05T10:00:00Z", pb.UploadDate)
}

func TestToPBInboxItem_UnknownRawStatus(t *testing.T) {
	now := time.Now().UTC()
	item := entity.NewInboxItem(uuid.New(), uuid.New(), uuid.New(), "/blobs/a.pdf", now)
	item.Status = "LEGACY_WEIRD"

	pb := utils.ToPBInboxItem(item)
	// unmapped raw values still round-trip, the canonical field stays empty
	assert.Empty(t, pb.Status)
	assert.Equal(t, "LEGACY_WEIRD", pb.RawStatus)
}

func TestParseYMD(t *testing.T) {
	d, err := utils.ParseYMD("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), d)

	_, err = utils.ParseYMD("28/02/2026")
	assert.Error(t, err)
}
