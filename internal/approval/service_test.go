package approval_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
	"github.com/MrJamesThe3rd/signoff/internal/approval"
	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
	"github.com/MrJamesThe3rd/signoff/internal/invoice"
	"github.com/MrJamesThe3rd/signoff/internal/scope"
)

const accessToken = "tok_abcdefghijklmnop"

func TestService_Submit(t *testing.T) {
	projectID := uuid.New()
	deliverableID := uuid.New()
	approvalID := uuid.New()
	comments := "looks good"

	target := &approval.Target{DeliverableID: deliverableID, ProjectID: projectID, AccessToken: accessToken}

	appendOK := func(m *approval.MockDecisionTx) {
		m.EXPECT().AppendApproval(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *deliverable.Approval) error {
				a.ID = approvalID
				return nil
			})
	}

	type testCase struct {
		name        string
		params      approval.SubmitParams
		noTx        bool
		setupMock   func(m *approval.MockDecisionTx)
		wantKind    apperr.Kind
		wantErr     bool
		wantAmount  *int64
		wantInvoice bool
	}

	amount := func(v int64) *int64 { return &v }

	tests := []testCase{
		{
			name: "ApproveMintsInvoiceFromLatestScope",
			params: approval.SubmitParams{
				DeliverableID: deliverableID, Token: accessToken, Action: deliverable.ActionApprove, Comments: &comments,
			},
			setupMock: func(m *approval.MockDecisionTx) {
				m.EXPECT().ResolveDeliverable(gomock.Any(), deliverableID).Return(target, nil)
				appendOK(m)
				m.EXPECT().LatestScope(gomock.Any(), projectID).Return(&scope.Scope{Version: 2, Price: 500}, nil)
				m.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						inv.ID = uuid.New()
						return nil
					})
				m.EXPECT().Commit().Return(nil)
			},
			wantInvoice: true,
			wantAmount:  amount(500),
		},
		{
			name:   "ApproveWithoutScopeInvoicesZero",
			params: approval.SubmitParams{DeliverableID: deliverableID, Token: accessToken, Action: deliverable.ActionApprove},
			setupMock: func(m *approval.MockDecisionTx) {
				m.EXPECT().ResolveDeliverable(gomock.Any(), deliverableID).Return(target, nil)
				appendOK(m)
				m.EXPECT().LatestScope(gomock.Any(), projectID).Return(nil, nil)
				m.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().Commit().Return(nil)
			},
			wantInvoice: true,
			wantAmount:  amount(0),
		},
		{
			name:   "RequestChangesMintsNothing",
			params: approval.SubmitParams{DeliverableID: deliverableID, Token: accessToken, Action: deliverable.ActionRequestChanges},
			setupMock: func(m *approval.MockDecisionTx) {
				m.EXPECT().ResolveDeliverable(gomock.Any(), deliverableID).Return(target, nil)
				appendOK(m)
				m.EXPECT().Commit().Return(nil)
			},
		},
		{
			name:     "MissingToken",
			params:   approval.SubmitParams{DeliverableID: deliverableID, Action: deliverable.ActionApprove},
			noTx:     true,
			wantKind: apperr.KindUnauthorized,
		},
		{
			name:   "WrongTokenWritesNothing",
			params: approval.SubmitParams{DeliverableID: deliverableID, Token: "tok_other", Action: deliverable.ActionApprove},
			setupMock: func(m *approval.MockDecisionTx) {
				m.EXPECT().ResolveDeliverable(gomock.Any(), deliverableID).Return(target, nil)
			},
			wantKind: apperr.KindForbidden,
		},
		{
			name:   "UnknownDeliverableIsForbidden",
			params: approval.SubmitParams{DeliverableID: deliverableID, Token: accessToken, Action: deliverable.ActionApprove},
			setupMock: func(m *approval.MockDecisionTx) {
				m.EXPECT().ResolveDeliverable(gomock.Any(), deliverableID).Return(nil, deliverable.ErrNotFound)
			},
			wantKind: apperr.KindForbidden,
		},
		{
			name:   "InvalidAction",
			params: approval.SubmitParams{DeliverableID: deliverableID, Token: accessToken, Action: "REJECT"},
			setupMock: func(m *approval.MockDecisionTx) {
				m.EXPECT().ResolveDeliverable(gomock.Any(), deliverableID).Return(target, nil)
			},
			wantKind: apperr.KindValidation,
		},
		{
			name:   "InvoiceFailureDoesNotCommit",
			params: approval.SubmitParams{DeliverableID: deliverableID, Token: accessToken, Action: deliverable.ActionApprove},
			setupMock: func(m *approval.MockDecisionTx) {
				m.EXPECT().ResolveDeliverable(gomock.Any(), deliverableID).Return(target, nil)
				appendOK(m)
				m.EXPECT().LatestScope(gomock.Any(), projectID).Return(&scope.Scope{Price: 500}, nil)
				m.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: true,
		},
		{
			name:   "AppendFailureDoesNotCommit",
			params: approval.SubmitParams{DeliverableID: deliverableID, Token: accessToken, Action: deliverable.ActionRequestChanges},
			setupMock: func(m *approval.MockDecisionTx) {
				m.EXPECT().ResolveDeliverable(gomock.Any(), deliverableID).Return(target, nil)
				m.EXPECT().AppendApproval(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := approval.NewMockRepository(ctrl)

			if !tt.noTx {
				dtx := approval.NewMockDecisionTx(ctrl)
				repo.EXPECT().BeginDecision(gomock.Any()).Return(dtx, nil)
				dtx.EXPECT().Rollback().Return(nil)
				tt.setupMock(dtx)
			}

			got, err := approval.NewService(repo).Submit(context.Background(), tt.params)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))

				return
			}

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, approvalID, got.Approval.ID)
			assert.Equal(t, tt.params.Action, got.Approval.Action)
			assert.Equal(t, deliverable.PerformedByClient, got.Approval.PerformedBy)
			assert.Equal(t, deliverableID, got.Approval.DeliverableID)

			if !tt.wantInvoice {
				assert.Nil(t, got.Invoice)
				return
			}

			require.NotNil(t, got.Invoice)
			assert.Equal(t, *tt.wantAmount, got.Invoice.Amount)
			assert.Equal(t, invoice.StatusDraft, got.Invoice.Status)
			assert.Equal(t, projectID, got.Invoice.ProjectID)
			require.NotNil(t, got.Invoice.ApprovalID)
			assert.Equal(t, approvalID, *got.Invoice.ApprovalID)
		})
	}
}

func TestService_Submit_BeginFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := approval.NewMockRepository(ctrl)
	repo.EXPECT().BeginDecision(gomock.Any()).Return(nil, errors.New("pool exhausted"))

	_, err := approval.NewService(repo).Submit(context.Background(), approval.SubmitParams{
		DeliverableID: uuid.New(),
		Token:         accessToken,
		Action:        deliverable.ActionApprove,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}
