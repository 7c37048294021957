package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/logging"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/dmitrijs2005/pinvault/internal/server/query"
	"github.com/dmitrijs2005/pinvault/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

const testOwner = models.AccountID("6f1c1c55-2a5e-4b8e-9f49-8a3a1d5f0001")

var testProfile = &models.Profile{ID: testOwner, Email: "a@example.com", UserName: "alice", CreatedAt: time.Unix(0, 0).UTC()}

type fakeUsers struct {
	tokens *services.TokenPair
	err    error

	gotRegister services.RegisterInput
	gotEmail    string
	gotMe       models.AccountID
}

func (f *fakeUsers) Register(ctx context.Context, in services.RegisterInput) (*models.Profile, error) {
	f.gotRegister = in
	if f.err != nil {
		return nil, f.err
	}
	return testProfile, nil
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (*services.TokenPair, *models.Profile, error) {
	f.gotEmail = email
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.tokens, testProfile, nil
}

func (f *fakeUsers) RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	return f.tokens, f.err
}

func (f *fakeUsers) Me(ctx context.Context, id models.AccountID) (*models.Profile, error) {
	f.gotMe = id
	if f.err != nil {
		return nil, f.err
	}
	return testProfile, nil
}

func (f *fakeUsers) ChangePassword(ctx context.Context, id models.AccountID, oldPassword, newPassword, confirmPassword string) error {
	return f.err
}

type fakeItems struct {
	item    *models.Item
	items   []*models.Item
	content []byte
	valid   bool
	err     error

	gotCreate  services.CreateItemInput
	gotUpdate  services.UpdateItemInput
	gotFilter  query.Filter
	gotMove    *models.ProjectID
	gotPin     string
	gotOldPin  string
	gotDeleted models.ItemID
}

func (f *fakeItems) CreateItem(ctx context.Context, in services.CreateItemInput) (*models.Item, error) {
	f.gotCreate = in
	return f.item, f.err
}

func (f *fakeItems) ReadItem(ctx context.Context, owner models.AccountID, id models.ItemID, pin string, fn func(*models.DecryptedItem) error) error {
	f.gotPin = pin
	if f.err != nil {
		return f.err
	}
	plaintext := append([]byte(nil), f.content...)
	defer func() {
		for i := range plaintext {
			plaintext[i] = 0
		}
	}()
	return fn(&models.DecryptedItem{Item: *f.item, Content: plaintext})
}

func (f *fakeItems) UpdateItem(ctx context.Context, in services.UpdateItemInput) (*models.Item, error) {
	f.gotUpdate = in
	return f.item, f.err
}

func (f *fakeItems) DeleteItem(ctx context.Context, owner models.AccountID, id models.ItemID) error {
	f.gotDeleted = id
	return f.err
}

func (f *fakeItems) MoveItem(ctx context.Context, owner models.AccountID, id models.ItemID, project *models.ProjectID) (*models.Item, error) {
	f.gotMove = project
	return f.item, f.err
}

func (f *fakeItems) ListItems(ctx context.Context, owner models.AccountID, filter query.Filter) ([]*models.Item, error) {
	f.gotFilter = filter
	return f.items, f.err
}

func (f *fakeItems) VerifyPin(ctx context.Context, owner models.AccountID, pin string) (bool, error) {
	f.gotPin = pin
	return f.valid, f.err
}

func (f *fakeItems) ChangePin(ctx context.Context, owner models.AccountID, oldPin, newPin string) error {
	f.gotOldPin, f.gotPin = oldPin, newPin
	return f.err
}

type fakeProjects struct {
	project  *models.Project
	projects []*models.ProjectWithStats
	orphaned int64
	err      error

	gotInput services.ProjectInput
}

func (f *fakeProjects) CreateProject(ctx context.Context, owner models.AccountID, in services.ProjectInput) (*models.Project, error) {
	f.gotInput = in
	return f.project, f.err
}

func (f *fakeProjects) GetProject(ctx context.Context, owner models.AccountID, id models.ProjectID) (*models.Project, error) {
	return f.project, f.err
}

func (f *fakeProjects) ListProjects(ctx context.Context, owner models.AccountID) ([]*models.ProjectWithStats, error) {
	return f.projects, f.err
}

func (f *fakeProjects) UpdateProject(ctx context.Context, owner models.AccountID, id models.ProjectID, in services.ProjectInput) (*models.Project, error) {
	f.gotInput = in
	return f.project, f.err
}

func (f *fakeProjects) DeleteProject(ctx context.Context, owner models.AccountID, id models.ProjectID) (int64, error) {
	return f.orphaned, f.err
}

func newServer(u *fakeUsers, i *fakeItems, p *fakeProjects) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", nopLogger{}, u, i, p, "k")
}

func authed() context.Context {
	return context.WithValue(context.Background(), userIDKey, testOwner)
}
