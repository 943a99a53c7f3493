package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/printer/database/models"
	"github.com/ygoproxy/ygoproxy/printer/interfaces/mock"
	"go.uber.org/mock/gomock"
)

func TestCustomCardService_Search(t *testing.T) {
	tests := []struct {
		name        string
		keyword     string
		wantKeyword string
	}{
		{name: "keyword is trimmed", keyword: "  blue ", wantKeyword: "blue"},
		{name: "one character lists everything", keyword: "b", wantKeyword: ""},
		{name: "empty lists everything", keyword: "", wantKeyword: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockCustomCardRepositoryInterface(ctrl)
			repo.EXPECT().Search(gomock.Any(), tt.wantKeyword, 50).
				Return([]*models.CustomCard{{ID: "r1", Name: "Blue Card", Type: "Normal Monster"}}, nil)

			got := NewCustomCardService(repo, nil, nil).Search(context.Background(), tt.keyword)
			require.Len(t, got, 1)
			assert.Equal(t, "Blue Card", got[0].Name)
		})
	}
}

func TestCustomCardService_SearchFailureIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustomCardRepositoryInterface(ctrl)
	repo.EXPECT().Search(gomock.Any(), "blue", 50).Return(nil, errors.New("store offline"))

	got := NewCustomCardService(repo, nil, nil).Search(context.Background(), "blue")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCustomCardService_ToCard(t *testing.T) {
	svc := NewCustomCardService(nil, nil, cards.NewIDAllocator())

	row := &models.CustomCard{
		ID:          "uuid-1",
		Name:        "Homebrew Dragon",
		Type:        "Synchro Monster",
		Description: "A test card.",
		Atk:         cards.Int(2500),
		Level:       cards.Int(7),
		ImageURL:    "https://cdn.example/u/1.png",
	}

	got := svc.ToCard(row)
	assert.Equal(t, int64(-1), got.ID)
	assert.True(t, got.IsCustom())
	assert.Equal(t, "uuid-1", got.CustomID)
	assert.Equal(t, cards.FrameSynchro, got.FrameType)
	assert.Equal(t, "Unknown", got.Race)
	assert.Equal(t, "A test card.", got.Desc)
	assert.Equal(t, 2500, *got.Atk)
	assert.Equal(t, "https://cdn.example/u/1.png", got.ImageURL())
	assert.Equal(t, int64(-1), got.Images[0].ID)

	// Converting the same row again keeps its identity; another row gets a new one.
	assert.Equal(t, got.ID, svc.ToCard(row).ID)
	other := svc.ToCard(&models.CustomCard{ID: "uuid-2", Name: "Other", Type: "Spell Card", Race: "Field"})
	assert.Equal(t, int64(-2), other.ID)
	assert.Equal(t, "Field", other.Race)
	assert.Empty(t, other.Images)
}

func TestCustomCardService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustomCardRepositoryInterface(ctrl)
	images := mock.NewMockImageStoreInterface(ctrl)

	svc := NewCustomCardService(repo, images, nil)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	images.EXPECT().UploadCustomCardImage(gomock.Any(), "user-1", "png", []byte("img")).
		Return("https://cdn.example/custom-cards/user-1/1.png", nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row *models.CustomCard) error {
			assert.NotEmpty(t, row.ID)
			assert.Equal(t, "user-1", row.UserID)
			assert.Equal(t, cards.FrameXyz, row.FrameType)
			assert.Equal(t, "https://cdn.example/custom-cards/user-1/1.png", row.ImageURL)
			assert.Equal(t, fixed, row.CreatedAt)
			return nil
		})

	row := svc.Create(context.Background(), "user-1", CustomCardInput{
		Name:     " Number 0 ",
		Type:     "XYZ Monster",
		Image:    []byte("img"),
		ImageExt: ".PNG",
	})
	require.NotNil(t, row)
	assert.Equal(t, "Number 0", row.Name)
}

func TestCustomCardService_CreateFailures(t *testing.T) {
	tests := []struct {
		name  string
		input CustomCardInput
		setup func(repo *mock.MockCustomCardRepositoryInterface, images *mock.MockImageStoreInterface)
	}{
		{
			name:  "missing name",
			input: CustomCardInput{Type: "Normal Monster"},
		},
		{
			name:  "missing type",
			input: CustomCardInput{Name: "No Type"},
		},
		{
			name:  "upload failure",
			input: CustomCardInput{Name: "Art", Type: "Normal Monster", Image: []byte("x"), ImageExt: "jpg"},
			setup: func(_ *mock.MockCustomCardRepositoryInterface, images *mock.MockImageStoreInterface) {
				images.EXPECT().UploadCustomCardImage(gomock.Any(), "u", "jpg", []byte("x")).
					Return("", errors.New("denied"))
			},
		},
		{
			name:  "store failure",
			input: CustomCardInput{Name: "Plain", Type: "Normal Monster"},
			setup: func(repo *mock.MockCustomCardRepositoryInterface, _ *mock.MockImageStoreInterface) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockCustomCardRepositoryInterface(ctrl)
			images := mock.NewMockImageStoreInterface(ctrl)
			if tt.setup != nil {
				tt.setup(repo, images)
			}

			assert.Nil(t, NewCustomCardService(repo, images, nil).Create(context.Background(), "u", tt.input))
		})
	}
}

func TestCustomCardService_CreateImageWithoutStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustomCardRepositoryInterface(ctrl)

	row := NewCustomCardService(repo, nil, nil).Create(context.Background(), "u", CustomCardInput{
		Name: "Art", Type: "Normal Monster", Image: []byte("x"),
	})
	assert.Nil(t, row)
}

func TestCustomCardService_ListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustomCardRepositoryInterface(ctrl)
	svc := NewCustomCardService(repo, nil, nil)
	ctx := context.Background()

	repo.EXPECT().GetAll(ctx).Return([]*models.CustomCard{{ID: "b"}, {ID: "a"}}, nil)
	list := svc.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].CustomID)

	repo.EXPECT().Delete(ctx, "a").Return(nil)
	assert.True(t, svc.Delete(ctx, "a"))

	repo.EXPECT().Delete(ctx, "zzz").Return(errors.New("not found"))
	assert.False(t, svc.Delete(ctx, "zzz"))
}
