package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/dbx"
	"github.com/dmitrijs2005/pinvault/internal/logging"
	"github.com/dmitrijs2005/pinvault/internal/server/blobs"
	"github.com/dmitrijs2005/pinvault/internal/server/config"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/dmitrijs2005/pinvault/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/pinvault/internal/server/repositories/items"
	"github.com/dmitrijs2005/pinvault/internal/server/repositories/projects"
	"github.com/dmitrijs2005/pinvault/internal/server/repositories/refreshtokens"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// --- shared fixtures ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newTestLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		StorageTimeout:               2 * time.Second,
		MaxItemSize:                  config.DefaultMaxItemSize,
	}
}

// newTestDB returns a real database handle so that dbx.WithTx can begin and
// commit. The fake repositories below ignore the handle they are given.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// --- in-memory repositories ---

type failure struct {
	nth int
	err error
}

// fakeState backs every fake repository. Failures can be injected per
// operation name ("items.UpdatePayload") on the n-th call.
type fakeState struct {
	mu       sync.Mutex
	accounts map[models.AccountID]models.Account
	projects map[models.ProjectID]models.Project
	items    map[models.ItemID]models.Item
	tokens   map[string]models.RefreshToken
	calls    map[string]int
	failures map[string]failure
	block    map[string]bool
	pauses   map[string]*pause
	now      time.Time
}

func newFakeState() *fakeState {
	return &fakeState{
		accounts: map[models.AccountID]models.Account{},
		projects: map[models.ProjectID]models.Project{},
		items:    map[models.ItemID]models.Item{},
		tokens:   map[string]models.RefreshToken{},
		calls:    map[string]int{},
		failures: map[string]failure{},
		block:    map[string]bool{},
		pauses:   map[string]*pause{},
		now:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// failOn makes the n-th call (1-based) of op from now on return err.
func (s *fakeState) failOn(op string, nth int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = failure{nth: s.calls[op] + nth, err: err}
}

// blockOn makes op wait for its context to end.
func (s *fakeState) blockOn(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.block[op] = true
}

type pause struct {
	reached chan struct{}
	release chan struct{}
}

// pauseOn makes the next call of op signal reached and then wait until
// release is called.
func (s *fakeState) pauseOn(op string) (reached <-chan struct{}, release func()) {
	p := &pause{reached: make(chan struct{}), release: make(chan struct{})}
	s.mu.Lock()
	s.pauses[op] = p
	s.mu.Unlock()
	return p.reached, func() { close(p.release) }
}

// enter records a call and returns the injected error, if any. Callers
// hold no lock.
func (s *fakeState) enter(ctx context.Context, op string) error {
	s.mu.Lock()
	s.calls[op]++
	n := s.calls[op]
	f, hasFailure := s.failures[op]
	blocked := s.block[op]
	p := s.pauses[op]
	delete(s.pauses, op)
	s.mu.Unlock()

	if p != nil {
		close(p.reached)
		select {
		case <-p.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if blocked {
		<-ctx.Done()
		return ctx.Err()
	}
	if hasFailure && f.nth == n {
		return f.err
	}
	return nil
}

func (s *fakeState) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *fakeState) item(id models.ItemID) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	return it, ok
}

func (s *fakeState) account(id models.AccountID) models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[id]
}

type fakeAccounts struct{ st *fakeState }

func (r fakeAccounts) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	if err := r.st.enter(ctx, "accounts.Create"); err != nil {
		return nil, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, existing := range r.st.accounts {
		if existing.Email == a.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	a.ID = models.AccountID(uuid.NewString())
	a.PinVersion = 1
	a.CreatedAt = r.st.tick()
	r.st.accounts[a.ID] = *a
	out := *a
	return &out, nil
}

func (r fakeAccounts) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if err := r.st.enter(ctx, "accounts.GetByEmail"); err != nil {
		return nil, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, a := range r.st.accounts {
		if a.Email == email {
			out := a
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r fakeAccounts) get(ctx context.Context, op string, id models.AccountID) (*models.Account, error) {
	if err := r.st.enter(ctx, op); err != nil {
		return nil, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	a, ok := r.st.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (r fakeAccounts) GetByID(ctx context.Context, id models.AccountID) (*models.Account, error) {
	return r.get(ctx, "accounts.GetByID", id)
}

func (r fakeAccounts) GetByIDForUpdate(ctx context.Context, id models.AccountID) (*models.Account, error) {
	return r.get(ctx, "accounts.GetByIDForUpdate", id)
}

func (r fakeAccounts) UpdatePassword(ctx context.Context, id models.AccountID, salt, hash []byte) error {
	if err := r.st.enter(ctx, "accounts.UpdatePassword"); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	a, ok := r.st.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.PasswordSalt, a.PasswordHash = salt, hash
	r.st.accounts[id] = a
	return nil
}

func (r fakeAccounts) UpdatePin(ctx context.Context, id models.AccountID, salt, verifier []byte, version int64) error {
	if err := r.st.enter(ctx, "accounts.UpdatePin"); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	a, ok := r.st.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.PinSalt, a.PinVerifier, a.PinVersion = salt, verifier, version
	r.st.accounts[id] = a
	return nil
}

type fakeTokens struct{ st *fakeState }

func (r fakeTokens) Create(ctx context.Context, userID models.AccountID, token string, validity time.Duration) error {
	if err := r.st.enter(ctx, "tokens.Create"); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.tokens[token] = models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (r fakeTokens) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if err := r.st.enter(ctx, "tokens.Find"); err != nil {
		return nil, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	t, ok := r.st.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r fakeTokens) Delete(ctx context.Context, token string) error {
	if err := r.st.enter(ctx, "tokens.Delete"); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	delete(r.st.tokens, token)
	return nil
}

func (r fakeTokens) DeleteByUser(ctx context.Context, userID models.AccountID) error {
	if err := r.st.enter(ctx, "tokens.DeleteByUser"); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for k, t := range r.st.tokens {
		if t.UserID == userID {
			delete(r.st.tokens, k)
		}
	}
	return nil
}

type fakeProjects struct{ st *fakeState }

func (r fakeProjects) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	if err := r.st.enter(ctx, "projects.Create"); err != nil {
		return nil, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	p.ID = models.ProjectID(uuid.NewString())
	p.CreatedAt = r.st.tick()
	p.UpdatedAt = p.CreatedAt
	r.st.projects[p.ID] = *p
	out := *p
	return &out, nil
}

func (r fakeProjects) Get(ctx context.Context, owner models.AccountID, id models.ProjectID) (*models.Project, error) {
	if err := r.st.enter(ctx, "projects.Get"); err != nil {
		return nil, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	p, ok := r.st.projects[id]
	if !ok || p.OwnerID != owner {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

func (r fakeProjects) ListByOwner(ctx context.Context, owner models.AccountID) ([]*models.ProjectWithStats, error) {
	if err := r.st.enter(ctx, "projects.ListByOwner"); err != nil {
		return nil, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []*models.ProjectWithStats
	for _, p := range r.st.projects {
		if p.OwnerID != owner {
			continue
		}
		ps := &models.ProjectWithStats{Project: p}
		for _, it := range r.st.items {
			if it.InProject(p.ID) {
				ps.ItemCount++
			}
		}
		out = append(out, ps)
	}
	return out, nil
}

func (r fakeProjects) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	if err := r.st.enter(ctx, "projects.Update"); err != nil {
		return nil, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	existing, ok := r.st.projects[p.ID]
	if !ok || existing.OwnerID != p.OwnerID {
		return nil, common.ErrorNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = r.st.tick()
	r.st.projects[p.ID] = *p
	out := *p
	return &out, nil
}

func (r fakeProjects) Delete(ctx context.Context, owner models.AccountID, id models.ProjectID) error {
	if err := r.st.enter(ctx, "projects.Delete"); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	p, ok := r.st.projects[id]
	if !ok || p.OwnerID != owner {
		return common.ErrorNotFound
	}
	delete(r.st.projects, id)
	return nil
}

type fakeItems struct{ st *fakeState }

func (r fakeItems) Create(ctx context.Context, it *models.Item) (*models.Item, error) {
	if err := r.st.enter(ctx, "items.Create"); err != nil {
		return nil, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	it.CreatedAt = r.st.tick()
	it.UpdatedAt = it.CreatedAt
	r.st.items[it.ID] = *it
	out := *it
	return &out, nil
}

func (r fakeItems) get(ctx context.Context, op string, owner models.AccountID, id models.ItemID) (*models.Item, error) {
	if err := r.st.enter(ctx, op); err != nil {
		return nil, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	it, ok := r.st.items[id]
	if !ok || it.OwnerID != owner {
		return nil, common.ErrorNotFound
	}
	return &it, nil
}

func (r fakeItems) Get(ctx context.Context, owner models.AccountID, id models.ItemID) (*models.Item, error) {
	return r.get(ctx, "items.Get", owner, id)
}

func (r fakeItems) GetForUpdate(ctx context.Context, owner models.AccountID, id models.ItemID) (*models.Item, error) {
	return r.get(ctx, "items.GetForUpdate", owner, id)
}

func (r fakeItems) ListByOwner(ctx context.Context, owner models.AccountID) ([]*models.Item, error) {
	if err := r.st.enter(ctx, "items.ListByOwner"); err != nil {
		return nil, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []*models.Item
	for _, it := range r.st.items {
		if it.OwnerID == owner {
			cp := it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r fakeItems) UpdatePayload(ctx context.Context, it *models.Item) (*models.Item, error) {
	if err := r.st.enter(ctx, "items.UpdatePayload"); err != nil {
		return nil, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	existing, ok := r.st.items[it.ID]
	if !ok || existing.OwnerID != it.OwnerID {
		return nil, common.ErrorNotFound
	}
	it.UpdatedAt = r.st.tick()
	r.st.items[it.ID] = *it
	out := *it
	return &out, nil
}

func (r fakeItems) UpdateProject(ctx context.Context, owner models.AccountID, id models.ItemID, project *models.ProjectID) (time.Time, error) {
	if err := r.st.enter(ctx, "items.UpdateProject"); err != nil {
		return time.Time{}, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	it, ok := r.st.items[id]
	if !ok || it.OwnerID != owner {
		return time.Time{}, common.ErrorNotFound
	}
	it.ProjectID = project
	it.UpdatedAt = r.st.tick()
	r.st.items[id] = it
	return it.UpdatedAt, nil
}

func (r fakeItems) Delete(ctx context.Context, owner models.AccountID, id models.ItemID) error {
	if err := r.st.enter(ctx, "items.Delete"); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	it, ok := r.st.items[id]
	if !ok || it.OwnerID != owner {
		return common.ErrorNotFound
	}
	delete(r.st.items, id)
	return nil
}

func (r fakeItems) ClearProject(ctx context.Context, owner models.AccountID, project models.ProjectID) (int64, error) {
	if err := r.st.enter(ctx, "items.ClearProject"); err != nil {
		return 0, err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var n int64
	for id, it := range r.st.items {
		if it.OwnerID == owner && it.InProject(project) {
			it.ProjectID = nil
			r.st.items[id] = it
			n++
		}
	}
	return n, nil
}

type fakeRepoManager struct{ st *fakeState }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(db dbx.DBTX) accounts.Repository     { return fakeAccounts{m.st} }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return fakeTokens{m.st}
}
func (m *fakeRepoManager) Projects(db dbx.DBTX) projects.Repository { return fakeProjects{m.st} }
func (m *fakeRepoManager) Items(db dbx.DBTX) items.Repository       { return fakeItems{m.st} }

// --- blob store with fault injection ---

type faultyStore struct {
	*blobs.MemoryStore
	mu      sync.Mutex
	puts    int
	failPut int
	getErr  error
}

func newFaultyStore() *faultyStore {
	return &faultyStore{MemoryStore: blobs.NewMemoryStore()}
}

// failPutOn makes the n-th Put from now on fail.
func (f *faultyStore) failPutOn(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failPut = f.puts + n
}

func (f *faultyStore) Put(ctx context.Context, key string, data []byte) error {
	f.mu.Lock()
	f.puts++
	fail := f.failPut != 0 && f.puts == f.failPut
	f.mu.Unlock()
	if fail {
		return errBoom{}
	}
	return f.MemoryStore.Put(ctx, key, data)
}

func (f *faultyStore) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	err := f.getErr
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return f.MemoryStore.Get(ctx, key)
}

// --- vault fixture ---

type vault struct {
	st       *fakeState
	store    *faultyStore
	users    *UserService
	items    *ItemService
	projects *ProjectService
	db       *sql.DB
}

func newVault(t *testing.T) *vault {
	t.Helper()
	db := newTestDB(t)
	st := newFakeState()
	rm := &fakeRepoManager{st: st}
	store := newFaultyStore()
	cfg := newTestConfig()
	log := newTestLogger()
	return &vault{
		st:       st,
		store:    store,
		users:    NewUserService(db, rm, cfg, log),
		items:    NewItemService(db, rm, store, cfg, log),
		projects: NewProjectService(db, rm, cfg, log),
		db:       db,
	}
}

// register opens an account with the given PIN and returns its ID.
func (v *vault) register(t *testing.T, email, pin string) models.AccountID {
	t.Helper()
	p, err := v.users.Register(context.Background(), RegisterInput{
		Email: email, UserName: "user", Password: "password1", ConfirmPassword: "password1", Pin: pin,
	})
	require.NoError(t, err)
	return p.ID
}

func (v *vault) read(t *testing.T, owner models.AccountID, id models.ItemID, pin string) (string, error) {
	t.Helper()
	var content string
	err := v.items.ReadItem(context.Background(), owner, id, pin, func(d *models.DecryptedItem) error {
		content = string(d.Content)
		return nil
	})
	return content, err
}
