package deliverable_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
)

func TestService_Create(t *testing.T) {
	projectID := uuid.New()
	notes := "first cut"

	type testCase struct {
		name      string
		params    deliverable.CreateParams
		setupMock func(m *deliverable.MockRepository)
		wantKind  apperr.Kind
	}

	tests := []testCase{
		{
			name:   "Success",
			params: deliverable.CreateParams{ProjectID: projectID, FileURL: "https://x/file.pdf", Notes: &notes},
			setupMock: func(m *deliverable.MockRepository) {
				m.EXPECT().
					CreateDeliverable(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *deliverable.Deliverable) error {
						d.ID = uuid.New()
						d.Version = 1
						return nil
					})
			},
		},
		{
			name:     "MalformedURL",
			params:   deliverable.CreateParams{ProjectID: projectID, FileURL: "file.pdf"},
			wantKind: apperr.KindValidation,
		},
		{
			name:     "MissingURL",
			params:   deliverable.CreateParams{ProjectID: projectID},
			wantKind: apperr.KindValidation,
		},
		{
			name:   "UnknownProject",
			params: deliverable.CreateParams{ProjectID: projectID, FileURL: "https://x/file.pdf"},
			setupMock: func(m *deliverable.MockRepository) {
				m.EXPECT().CreateDeliverable(gomock.Any(), gomock.Any()).Return(apperr.NotFound("project not found"))
			},
			wantKind: apperr.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := deliverable.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := deliverable.NewService(repo).Create(context.Background(), tt.params)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, got.Version)
			assert.Empty(t, got.Approvals)
			assert.Equal(t, deliverable.StatePending, got.State())
		})
	}
}

func TestService_List(t *testing.T) {
	projectID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := deliverable.NewMockRepository(ctrl)
	repo.EXPECT().ListDeliverables(gomock.Any(), projectID).Return([]*deliverable.Deliverable{
		{Version: 2},
		{Version: 1},
	}, nil)

	got, err := deliverable.NewService(repo).List(context.Background(), projectID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_Get(t *testing.T) {
	projectID := uuid.New()
	deliverableID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(m *deliverable.MockRepository)
		wantErr   error
	}{
		{
			name: "Found",
			setupMock: func(m *deliverable.MockRepository) {
				m.EXPECT().GetDeliverable(gomock.Any(), projectID, deliverableID).
					Return(&deliverable.Deliverable{ID: deliverableID, ProjectID: projectID, Version: 3}, nil)
			},
		},
		{
			name: "OtherProject",
			setupMock: func(m *deliverable.MockRepository) {
				m.EXPECT().GetDeliverable(gomock.Any(), projectID, deliverableID).Return(nil, deliverable.ErrNotFound)
			},
			wantErr: deliverable.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := deliverable.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := deliverable.NewService(repo).Get(context.Background(), projectID, deliverableID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 3, got.Version)
		})
	}
}
