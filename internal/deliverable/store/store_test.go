package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
	"github.com/MrJamesThe3rd/signoff/internal/database/dbtest"
	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
	"github.com/MrJamesThe3rd/signoff/internal/deliverable/store"
	"github.com/MrJamesThe3rd/signoff/internal/project"
	projectStore "github.com/MrJamesThe3rd/signoff/internal/project/store"
	"github.com/MrJamesThe3rd/signoff/internal/scope"
	scopeStore "github.com/MrJamesThe3rd/signoff/internal/scope/store"
)

func TestStore_VersionSequencesAreIndependent(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	p, err := project.NewService(projectStore.New(db)).Create(ctx, project.CreateParams{
		OwnerID: uuid.New(),
		Name:    "Website",
	})
	require.NoError(t, err)

	scopes := scopeStore.New(db)
	for range 2 {
		require.NoError(t, scopes.CreateScope(ctx, &scope.Scope{ProjectID: p.ID, Content: "pages"}))
	}

	st := store.New(db)

	var versions []int
	for range 3 {
		d := &deliverable.Deliverable{ProjectID: p.ID, FileURL: "https://files.example.com/a.zip"}
		require.NoError(t, st.CreateDeliverable(ctx, d))
		versions = append(versions, d.Version)
	}
	assert.Equal(t, []int{1, 2, 3}, versions)

	list, err := st.ListDeliverables(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 3, list[0].Version)

	for _, d := range list {
		assert.NotNil(t, d.Approvals)
		assert.Empty(t, d.Approvals)
	}
}

func TestStore_GetDeliverable_ScopedToProject(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	projects := project.NewService(projectStore.New(db))

	a, err := projects.Create(ctx, project.CreateParams{OwnerID: uuid.New(), Name: "A"})
	require.NoError(t, err)

	b, err := projects.Create(ctx, project.CreateParams{OwnerID: uuid.New(), Name: "B"})
	require.NoError(t, err)

	st := store.New(db)
	notes := "first pass"
	d := &deliverable.Deliverable{ProjectID: a.ID, FileURL: "https://files.example.com/a.zip", Notes: &notes}
	require.NoError(t, st.CreateDeliverable(ctx, d))

	got, err := st.GetDeliverable(ctx, a.ID, d.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Notes)
	assert.Equal(t, notes, *got.Notes)

	_, err = st.GetDeliverable(ctx, b.ID, d.ID)
	assert.ErrorIs(t, err, deliverable.ErrNotFound)
}

func TestStore_CreateDeliverable_UnknownProject(t *testing.T) {
	db := dbtest.Open(t)

	err := store.New(db).CreateDeliverable(context.Background(), &deliverable.Deliverable{
		ProjectID: uuid.New(),
		FileURL:   "https://files.example.com/a.zip",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
