package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-photo-gate/internal/mock"
	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0192f3a4-7b1c-7def-8a9b-1234567890ab", want: "0192f3a47b"},
		{in: "AB.CD-ef", want: "abcdef"},
		{in: "short", want: "short"},
		{in: "", want: ""},
		{in: "ünïcødé-name", want: "ncdnam"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.in))
		})
	}
}

func TestOnUploadSuccess_RenamesAndRecordsProvenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	submissions := mock.NewMockSubmissionRepository(ctrl)
	media := mock.NewMockMediaRepository(ctrl)

	provenance := models.Provenance{OriginalFilename: "IMG_0001.jpg", OriginalSize: 1234, FileHash: "hash"}
	media.EXPECT().GetMedia(gomock.Any(), int64(20)).
		Return(models.Media{ID: 20, FilePath: "0192f3a4-7b1c-7def-8a9b-1234567890ab.jpg"}, nil)
	submissions.EXPECT().SubmissionNameExists(gomock.Any(), "0192f3a47b").Return(false, nil)
	submissions.EXPECT().Finalize(gomock.Any(), models.Finalization{
		SubmissionID:   10,
		PrimaryMediaID: 20,
		Name:           "0192f3a47b",
		Title:          "0192f3a47b",
		Provenance:     provenance,
	}).Return(nil)

	gomock.InOrder(
		media.EXPECT().MediaNameExists(gomock.Any(), "0192f3a47b-photo").Return(true, nil),
		media.EXPECT().MediaNameExists(gomock.Any(), "0192f3a47b-photo-2").Return(false, nil),
		media.EXPECT().RenameMedia(gomock.Any(), int64(20), "0192f3a47b-photo-2", "0192f3a47b-photo-2").Return(store.ErrMediaNameTaken),
		media.EXPECT().MediaNameExists(gomock.Any(), "0192f3a47b-photo-3").Return(false, nil),
		media.EXPECT().RenameMedia(gomock.Any(), int64(20), "0192f3a47b-photo-3", "0192f3a47b-photo-3").Return(nil),
	)

	f := NewFinalizer(submissions, media)

	require.NoError(t, f.OnUploadSuccess(context.Background(), models.UploadSuccess{PostID: 10, MediaIDs: []int64{20}, Provenance: provenance}))
}

func TestOnUploadSuccess_IgnoresIncompleteSignal(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := NewFinalizer(mock.NewMockSubmissionRepository(ctrl), mock.NewMockMediaRepository(ctrl))

	assert.NoError(t, f.OnUploadSuccess(context.Background(), models.UploadSuccess{PostID: 10}))
	assert.NoError(t, f.OnUploadSuccess(context.Background(), models.UploadSuccess{MediaIDs: []int64{1}}))
}

func TestOnUploadSuccess_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	submissions := mock.NewMockSubmissionRepository(ctrl)
	media := mock.NewMockMediaRepository(ctrl)
	f := NewFinalizer(submissions, media)
	success := models.UploadSuccess{PostID: 10, MediaIDs: []int64{20}}

	media.EXPECT().GetMedia(gomock.Any(), int64(20)).Return(models.Media{}, store.ErrMediaNotFound)
	assert.ErrorIs(t, f.OnUploadSuccess(context.Background(), success), ErrFinalizing)

	media.EXPECT().GetMedia(gomock.Any(), int64(20)).Return(models.Media{ID: 20, FilePath: "abc.jpg"}, nil)
	submissions.EXPECT().SubmissionNameExists(gomock.Any(), "abc").Return(false, nil)
	submissions.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(store.ErrSubmissionNotFound)
	assert.ErrorIs(t, f.OnUploadSuccess(context.Background(), success), store.ErrSubmissionNotFound)

	media.EXPECT().GetMedia(gomock.Any(), int64(20)).Return(models.Media{ID: 20, FilePath: "abc.jpg"}, nil)
	submissions.EXPECT().SubmissionNameExists(gomock.Any(), "abc").Return(false, nil)
	submissions.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(nil)
	media.EXPECT().MediaNameExists(gomock.Any(), "abc-photo").Return(false, errors.New("db down"))
	assert.ErrorIs(t, f.OnUploadSuccess(context.Background(), success), ErrFinalizing)

	media.EXPECT().GetMedia(gomock.Any(), int64(20)).Return(models.Media{ID: 20, FilePath: "abc.jpg"}, nil)
	submissions.EXPECT().SubmissionNameExists(gomock.Any(), "abc").Return(false, errors.New("db down"))
	assert.ErrorIs(t, f.OnUploadSuccess(context.Background(), success), ErrFinalizing)
}

func TestOnUploadSuccess_NoUniqueName(t *testing.T) {
	ctrl := gomock.NewController(t)
	submissions := mock.NewMockSubmissionRepository(ctrl)
	media := mock.NewMockMediaRepository(ctrl)

	media.EXPECT().GetMedia(gomock.Any(), int64(20)).Return(models.Media{ID: 20, FilePath: "abc.jpg"}, nil)
	submissions.EXPECT().SubmissionNameExists(gomock.Any(), "abc").Return(false, nil)
	submissions.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(nil)
	media.EXPECT().MediaNameExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(maxNameAttempts)

	err := NewFinalizer(submissions, media).OnUploadSuccess(context.Background(), models.UploadSuccess{PostID: 10, MediaIDs: []int64{20}})

	assert.ErrorIs(t, err, ErrNoUniqueName)
}

func TestOnUploadSuccess_NoUniqueSubmissionName(t *testing.T) {
	ctrl := gomock.NewController(t)
	submissions := mock.NewMockSubmissionRepository(ctrl)
	media := mock.NewMockMediaRepository(ctrl)

	media.EXPECT().GetMedia(gomock.Any(), int64(20)).Return(models.Media{ID: 20, FilePath: "abc.jpg"}, nil)
	submissions.EXPECT().SubmissionNameExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(maxNameAttempts)

	err := NewFinalizer(submissions, media).OnUploadSuccess(context.Background(), models.UploadSuccess{PostID: 10, MediaIDs: []int64{20}})

	assert.ErrorIs(t, err, ErrNoUniqueName)
}

// Two photos stored in the same millisecond under time-ordered names share
// their display prefix; the second one must still get its own names.
func TestOnUploadSuccess_SamePrefixUploadsGetDistinctNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	submissions := mock.NewMockSubmissionRepository(ctrl)
	media := mock.NewMockMediaRepository(ctrl)

	stored := map[int64]models.Media{
		21: {ID: 21, FilePath: "0192f3a4-7b1c-7def-8a9b-000000000001.jpg"},
		22: {ID: 22, FilePath: "0192f3a4-7b1c-7def-8a9b-000000000002.jpg"},
	}
	submissionNames := map[string]int64{}
	mediaNames := map[string]int64{}

	media.EXPECT().GetMedia(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id int64) (models.Media, error) {
		return stored[id], nil
	}).Times(2)
	submissions.EXPECT().SubmissionNameExists(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name string) (bool, error) {
		_, ok := submissionNames[name]
		return ok, nil
	}).AnyTimes()
	submissions.EXPECT().Finalize(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fin models.Finalization) error {
		if _, ok := submissionNames[fin.Name]; ok {
			return store.ErrSubmissionNameTaken
		}
		submissionNames[fin.Name] = fin.SubmissionID
		return nil
	}).Times(2)
	media.EXPECT().MediaNameExists(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name string) (bool, error) {
		_, ok := mediaNames[name]
		return ok, nil
	}).AnyTimes()
	media.EXPECT().RenameMedia(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id int64, name, _ string) error {
		if _, ok := mediaNames[name]; ok {
			return store.ErrMediaNameTaken
		}
		mediaNames[name] = id
		return nil
	}).Times(2)

	f := NewFinalizer(submissions, media)
	require.NoError(t, f.OnUploadSuccess(context.Background(), models.UploadSuccess{PostID: 11, MediaIDs: []int64{21}}))
	require.NoError(t, f.OnUploadSuccess(context.Background(), models.UploadSuccess{PostID: 12, MediaIDs: []int64{22}}))

	assert.Equal(t, map[string]int64{"0192f3a47b": 11, "0192f3a47b-2": 12}, submissionNames)
	assert.Equal(t, map[string]int64{"0192f3a47b-photo": 21, "0192f3a47b-2-photo": 22}, mediaNames)
}
