package portal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
	"github.com/MrJamesThe3rd/signoff/internal/portal"
	"github.com/MrJamesThe3rd/signoff/internal/project"
	"github.com/MrJamesThe3rd/signoff/internal/scope"
)

type mocks struct {
	projects     *portal.MockProjectFinder
	scopes       *portal.MockScopeLister
	deliverables *portal.MockDeliverableLister
}

func TestService_Resolve(t *testing.T) {
	p := &project.Project{ID: uuid.New(), Name: "Brand refresh", AccessToken: "abcdefghijkl"}

	type testCase struct {
		name      string
		token     string
		setupMock func(m mocks)
		wantKind  apperr.Kind
	}

	tests := []testCase{
		{
			name:  "Success",
			token: p.AccessToken,
			setupMock: func(m mocks) {
				m.projects.EXPECT().ByToken(gomock.Any(), p.AccessToken).Return(p, nil)
				m.scopes.EXPECT().List(gomock.Any(), p.ID).Return([]*scope.Scope{{Version: 2}, {Version: 1}}, nil)
				m.deliverables.EXPECT().List(gomock.Any(), p.ID).Return([]*deliverable.Deliverable{{Version: 1}}, nil)
			},
		},
		{
			name:  "UnknownToken",
			token: "nope",
			setupMock: func(m mocks) {
				m.projects.EXPECT().ByToken(gomock.Any(), "nope").Return(nil, project.ErrNotFound)
			},
			wantKind: apperr.KindNotFound,
		},
		{
			name:  "EmptyToken",
			token: "",
			setupMock: func(m mocks) {
				m.projects.EXPECT().ByToken(gomock.Any(), "").Return(nil, project.ErrNotFound)
			},
			wantKind: apperr.KindNotFound,
		},
		{
			name:  "StoreFailure",
			token: p.AccessToken,
			setupMock: func(m mocks) {
				m.projects.EXPECT().ByToken(gomock.Any(), p.AccessToken).Return(nil, errors.New("connection reset"))
			},
			wantKind: apperr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks{
				projects:     portal.NewMockProjectFinder(ctrl),
				scopes:       portal.NewMockScopeLister(ctrl),
				deliverables: portal.NewMockDeliverableLister(ctrl),
			}
			tt.setupMock(m)

			svc := portal.NewService(m.projects, m.scopes, m.deliverables)
			view, err := svc.Resolve(context.Background(), tt.token)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, p, view.Project)
			assert.Len(t, view.Scopes, 2)
			assert.Len(t, view.Deliverables, 1)
		})
	}
}
