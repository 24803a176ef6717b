package invoice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/signoff/internal/invoice"
)

func TestService_List(t *testing.T) {
	projectID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *invoice.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().ListInvoices(gomock.Any(), projectID).Return([]*invoice.Invoice{
					{Amount: 500, Status: invoice.StatusDraft},
					{Amount: 0, Status: invoice.StatusDraft},
				}, nil)
			},
			wantLen: 2,
		},
		{
			name: "NoInvoices",
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().ListInvoices(gomock.Any(), projectID).Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name: "RepoError",
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().ListInvoices(gomock.Any(), projectID).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := invoice.NewService(repo).List(context.Background(), projectID)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
		})
	}
}
