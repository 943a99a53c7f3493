package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/printer/interfaces/mock"
	"go.uber.org/mock/gomock"
)

func TestBanListService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)
	svc := NewBanListService(db)
	ctx := context.Background()

	db.EXPECT().GetBanList(gomock.Any(), cards.FormatTCG).Return([]cards.BanListEntry{
		{CardID: 1, TCG: cards.Banned, OCG: cards.Limited},
		{CardID: 2, OCG: cards.SemiLimited},
	}, nil).Times(1)

	assert.Equal(t, cards.FormatTCG, svc.Format())
	assert.Equal(t, cards.Banned, svc.Status(ctx, 1))
	assert.Equal(t, cards.BanStatus(""), svc.Status(ctx, 2))
	assert.Equal(t, cards.BanStatus(""), svc.Status(ctx, 99))

	db.EXPECT().GetBanList(gomock.Any(), cards.FormatOCG).Return([]cards.BanListEntry{
		{CardID: 2, OCG: cards.SemiLimited},
	}, nil).Times(1)

	require.NoError(t, svc.SetFormat(ctx, cards.FormatOCG))
	assert.Equal(t, cards.FormatOCG, svc.Format())
	assert.Equal(t, cards.SemiLimited, svc.Status(ctx, 2))

	entries, err := svc.Entries(ctx, cards.FormatTCG)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].CardID)
}

func TestBanListService_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)
	svc := NewBanListService(db)
	ctx := context.Background()

	db.EXPECT().GetBanList(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")).AnyTimes()

	assert.Equal(t, cards.BanStatus(""), svc.Status(ctx, 1))
	assert.Error(t, svc.SetFormat(ctx, cards.FormatOCG))
	assert.Equal(t, cards.FormatTCG, svc.Format())

	_, err := svc.Entries(ctx, cards.FormatOCG)
	assert.Error(t, err)
}
