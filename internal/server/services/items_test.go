package services

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/dmitrijs2005/pinvault/internal/server/query"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (v *vault) create(t *testing.T, owner models.AccountID, filename, content, pin string) *models.Item {
	t.Helper()
	item, err := v.items.CreateItem(context.Background(), CreateItemInput{
		Owner: owner, Filename: filename, Content: []byte(content), Pin: pin,
	})
	require.NoError(t, err)
	return item
}

func TestItemService_SecretsEnvScenario(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	ctx := context.Background()

	item := v.create(t, owner, "secrets.env", "API_KEY=abc123\nSECRET=xyz", "1234")
	assert.Equal(t, models.FileTypeEnv, item.FileType)
	assert.Equal(t, models.ItemKindFile, item.Kind)
	assert.EqualValues(t, 25, item.Size)

	stored, err := v.store.Get(ctx, item.StorageKey)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(stored, []byte("abc123")))

	content, err := v.read(t, owner, item.ID, "1234")
	require.NoError(t, err)
	assert.Equal(t, "API_KEY=abc123\nSECRET=xyz", content)

	_, err = v.read(t, owner, item.ID, "0000")
	assert.ErrorIs(t, err, common.ErrInvalidPin)

	list, err := v.items.ListItems(ctx, owner, query.Filter{SearchTerm: "SECRETS"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, item.ID, list[0].ID)
}

func TestItemService_WrongPinHidesExistence(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	item := v.create(t, owner, "a.txt", "x", "1234")

	_, errExisting := v.read(t, owner, item.ID, "9999")
	_, errMissing := v.read(t, owner, models.ItemID(uuid.NewString()), "9999")
	_, errMalformed := v.read(t, owner, "nope", "9999")

	for _, err := range []error{errExisting, errMissing, errMalformed} {
		require.ErrorIs(t, err, common.ErrInvalidPin)
		assert.Equal(t, errExisting.Error(), err.Error())
	}

	_, err := v.read(t, owner, models.ItemID(uuid.NewString()), "1234")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestItemService_ReadItem_OtherOwner(t *testing.T) {
	v := newVault(t)
	alice := v.register(t, "alice@example.com", "1234")
	bob := v.register(t, "bob@example.com", "1234")
	item := v.create(t, alice, "a.txt", "alice only", "1234")

	_, err := v.read(t, bob, item.ID, "1234")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestItemService_ReadItem_WipesPlaintext(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	item := v.create(t, owner, "a.txt", "wipe me", "1234")

	var seen []byte
	err := v.items.ReadItem(context.Background(), owner, item.ID, "1234", func(d *models.DecryptedItem) error {
		seen = d.Content
		assert.Equal(t, "wipe me", string(d.Content))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, make([]byte, len("wipe me")), seen)
}

func TestItemService_ReadItem_StaleKeyVersion(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	item := v.create(t, owner, "a.txt", "x", "1234")

	v.st.mu.Lock()
	row := v.st.items[item.ID]
	row.KeyVersion = 0
	v.st.items[item.ID] = row
	v.st.mu.Unlock()

	_, err := v.read(t, owner, item.ID, "1234")
	assert.ErrorIs(t, err, common.ErrInvalidPin)
}

func TestItemService_ReadItem_WaitsForConcurrentUpdate(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	item := v.create(t, owner, "a.txt", "one", "1234")
	ctx := context.Background()

	reached, release := v.st.pauseOn("items.UpdatePayload")
	updateErr := make(chan error, 1)
	go func() {
		_, err := v.items.UpdateItem(ctx, UpdateItemInput{
			Owner: owner, ID: item.ID, Pin: "1234", ReplaceContent: true, Content: []byte("two"),
		})
		updateErr <- err
	}()
	<-reached

	type readResult struct {
		content string
		err     error
	}
	readDone := make(chan readResult, 1)
	go func() {
		content, err := v.read(t, owner, item.ID, "1234")
		readDone <- readResult{content, err}
	}()

	select {
	case r := <-readDone:
		t.Fatalf("read finished while the update held the item: %q, %v", r.content, r.err)
	case <-time.After(50 * time.Millisecond):
	}

	release()
	require.NoError(t, <-updateErr)
	r := <-readDone
	require.NoError(t, r.err)
	assert.Equal(t, "two", r.content)
}

func TestItemService_CreateItem_Validation(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	unknown := models.ProjectID(uuid.NewString())

	tests := []struct {
		name string
		in   CreateItemInput
		want error
	}{
		{"empty filename", CreateItemInput{Filename: "  ", Pin: "1234"}, common.ErrorValidation},
		{"bad type", CreateItemInput{Filename: "a", FileType: "exe", Pin: "1234"}, common.ErrorValidation},
		{"bad kind", CreateItemInput{Filename: "a", Kind: "link", Pin: "1234"}, common.ErrorValidation},
		{"too large", CreateItemInput{Filename: "a", Content: make([]byte, 5<<20+1), Pin: "1234"}, common.ErrorValidation},
		{"malformed pin", CreateItemInput{Filename: "a", Pin: "12"}, common.ErrorValidation},
		{"wrong pin", CreateItemInput{Filename: "a", Pin: "4321"}, common.ErrInvalidPin},
		{"unknown project", CreateItemInput{Filename: "a", Pin: "1234", ProjectID: &unknown}, common.ErrorValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			in.Owner = owner
			_, err := v.items.CreateItem(context.Background(), in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, v.st.items)
	assert.Empty(t, v.store.Keys())
}

func TestItemService_CreateItem_Note(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")

	item, err := v.items.CreateItem(context.Background(), CreateItemInput{
		Owner: owner, Filename: "wifi", FileType: models.FileTypeTxt, Kind: models.ItemKindNote,
		Content: []byte("hunter2"), Pin: "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ItemKindNote, item.Kind)
	assert.Equal(t, models.FileTypeTxt, item.FileType)
}

func TestItemService_CreateItem_StorageFailureLeavesNoBlob(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	v.st.failOn("items.Create", 1, errBoom{})

	_, err := v.items.CreateItem(context.Background(), CreateItemInput{Owner: owner, Filename: "a.txt", Content: []byte("x"), Pin: "1234"})
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.Empty(t, v.store.Keys())
	assert.Empty(t, v.st.items)
}

func TestItemService_CreateItem_InsertTimeoutDiscardsBlob(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	v.st.failOn("items.Create", 1, common.ErrStorageTimeout)

	var err error
	assert.NotPanics(t, func() {
		_, err = v.items.CreateItem(context.Background(), CreateItemInput{Owner: owner, Filename: "a.txt", Content: []byte("x"), Pin: "1234"})
	})
	assert.ErrorIs(t, err, common.ErrStorageTimeout)
	assert.Empty(t, v.store.Keys())
	assert.Empty(t, v.st.items)
}

func TestItemService_UpdateItem(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	item := v.create(t, owner, "a.txt", "one", "1234")
	ctx := context.Background()

	updated, err := v.items.UpdateItem(ctx, UpdateItemInput{
		Owner: owner, ID: item.ID, Pin: "1234", ReplaceContent: true, Content: []byte("two!"),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, updated.Size)
	assert.NotEqual(t, item.StorageKey, updated.StorageKey)
	assert.NotEqual(t, item.Nonce, updated.Nonce)
	assert.Equal(t, item.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(item.UpdatedAt))
	assert.Equal(t, []string{updated.StorageKey}, v.store.Keys())

	content, err := v.read(t, owner, item.ID, "1234")
	require.NoError(t, err)
	assert.Equal(t, "two!", content)
}

func TestItemService_UpdateItem_MetadataOnly(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	item := v.create(t, owner, "a.txt", "keep me", "1234")
	project, err := v.projects.CreateProject(context.Background(), owner, ProjectInput{Name: "Infra"})
	require.NoError(t, err)

	name := "b.json"
	ft := models.FileTypeJSON
	updated, err := v.items.UpdateItem(context.Background(), UpdateItemInput{
		Owner: owner, ID: item.ID, Pin: "1234", Filename: &name, FileType: &ft,
		Project: &ProjectChange{ProjectID: &project.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "b.json", updated.Filename)
	assert.Equal(t, models.FileTypeJSON, updated.FileType)
	assert.True(t, updated.InProject(project.ID))

	content, err := v.read(t, owner, item.ID, "1234")
	require.NoError(t, err)
	assert.Equal(t, "keep me", content)
}

// assertUntouched checks that the row and payload of item are exactly as
// they were and that no other payload was left behind.
func assertUntouched(t *testing.T, v *vault, before models.Item, payload []byte) {
	t.Helper()
	row, ok := v.st.item(before.ID)
	require.True(t, ok)
	assert.Equal(t, before, row)
	stored, err := v.store.Get(context.Background(), before.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, payload, stored)
	assert.Equal(t, []string{before.StorageKey}, v.store.Keys())
}

func TestItemService_UpdateItem_FailuresLeaveItemUntouched(t *testing.T) {
	tests := []struct {
		name  string
		pin   string
		setup func(v *vault)
		want  error
	}{
		{name: "wrong pin", pin: "9999", want: common.ErrInvalidPin},
		{name: "blob write fails", pin: "1234", setup: func(v *vault) { v.store.failPutOn(1) }, want: common.ErrorInternal},
		{name: "row update fails", pin: "1234", setup: func(v *vault) { v.st.failOn("items.UpdatePayload", 1, errBoom{}) }, want: common.ErrorInternal},
		{name: "account lock fails", pin: "1234", setup: func(v *vault) { v.st.failOn("accounts.GetByIDForUpdate", 1, errBoom{}) }, want: common.ErrorInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVault(t)
			owner := v.register(t, "a@example.com", "1234")
			item := v.create(t, owner, "a.txt", "original", "1234")
			payload, err := v.store.Get(context.Background(), item.StorageKey)
			require.NoError(t, err)
			before, _ := v.st.item(item.ID)

			if tt.setup != nil {
				tt.setup(v)
			}
			_, err = v.items.UpdateItem(context.Background(), UpdateItemInput{
				Owner: owner, ID: item.ID, Pin: tt.pin, ReplaceContent: true, Content: []byte("replacement"),
			})
			assert.ErrorIs(t, err, tt.want)
			assertUntouched(t, v, before, payload)
		})
	}
}

func TestItemService_UpdateItem_ConcurrentWritesSerialize(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	item := v.create(t, owner, "a.txt", "start", "1234")

	const writers = 4
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = v.items.UpdateItem(context.Background(), UpdateItemInput{
				Owner: owner, ID: item.ID, Pin: "1234", ReplaceContent: true, Content: []byte(fmt.Sprintf("writer-%d", i)),
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	content, err := v.read(t, owner, item.ID, "1234")
	require.NoError(t, err)
	assert.Regexp(t, `^writer-\d$`, content)
	assert.Len(t, v.store.Keys(), 1)
}

func TestItemService_DeleteItem(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	item := v.create(t, owner, "a.txt", "x", "1234")
	ctx := context.Background()

	require.NoError(t, v.items.DeleteItem(ctx, owner, item.ID))
	assert.Empty(t, v.store.Keys())
	_, ok := v.st.item(item.ID)
	assert.False(t, ok)

	assert.ErrorIs(t, v.items.DeleteItem(ctx, owner, item.ID), common.ErrorNotFound)
	assert.ErrorIs(t, v.items.DeleteItem(ctx, owner, "not-a-uuid"), common.ErrorNotFound)
}

func TestItemService_MoveItem(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	item := v.create(t, owner, "a.txt", "x", "1234")
	project, err := v.projects.CreateProject(context.Background(), owner, ProjectInput{Name: "Work"})
	require.NoError(t, err)
	ctx := context.Background()

	moved, err := v.items.MoveItem(ctx, owner, item.ID, &project.ID)
	require.NoError(t, err)
	assert.True(t, moved.InProject(project.ID))
	assert.Equal(t, item.StorageKey, moved.StorageKey)

	moved, err = v.items.MoveItem(ctx, owner, item.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, moved.ProjectID)

	unknown := models.ProjectID(uuid.NewString())
	_, err = v.items.MoveItem(ctx, owner, item.ID, &unknown)
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = v.items.MoveItem(ctx, owner, models.ItemID(uuid.NewString()), nil)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestItemService_ListItems(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	other := v.register(t, "b@example.com", "1234")
	ctx := context.Background()

	project, err := v.projects.CreateProject(ctx, owner, ProjectInput{Name: "Work"})
	require.NoError(t, err)

	alpha := v.create(t, owner, "alpha.env", "1", "1234")
	beta := v.create(t, owner, "beta.txt", "2", "1234")
	v.create(t, other, "alpha.env", "3", "1234")
	_, err = v.items.MoveItem(ctx, owner, beta.ID, &project.ID)
	require.NoError(t, err)

	all, err := v.items.ListItems(ctx, owner, query.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, beta.ID, all[0].ID)
	assert.Equal(t, alpha.ID, all[1].ID)

	unassigned, err := v.items.ListItems(ctx, owner, query.Filter{Project: query.Unassigned()})
	require.NoError(t, err)
	require.Len(t, unassigned, 1)
	assert.Equal(t, alpha.ID, unassigned[0].ID)

	env := models.FileTypeEnv
	byType, err := v.items.ListItems(ctx, owner, query.Filter{FileType: &env, Scope: query.ProjectDetail(project.ID)})
	require.NoError(t, err)
	assert.Empty(t, byType)
}

func TestItemService_StorageTimeout(t *testing.T) {
	v := newVault(t)
	owner := v.register(t, "a@example.com", "1234")
	v.items.timeout = 20 * time.Millisecond
	v.st.blockOn("items.ListByOwner")

	_, err := v.items.ListItems(context.Background(), owner, query.Filter{})
	assert.ErrorIs(t, err, common.ErrStorageTimeout)
}
