package service

import (
	"context"
	"io"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	packageserrors "tripora/internal/packages/errors"
	"tripora/pkg/config"
	apperrors "tripora/pkg/errors"
	"tripora/pkg/logger"
	"tripora/pkg/model"
	"tripora/pkg/validation"
)

type mockPackageRepo struct {
	packages map[string]*model.Package
	lastSet  bson.M
}

func newMockPackageRepo() *mockPackageRepo {
	return &mockPackageRepo{packages: make(map[string]*model.Package)}
}

func (m *mockPackageRepo) Create(_ context.Context, pkg *model.Package) error {
	pkg.ID = "pkg-1"
	m.packages[pkg.ID] = pkg
	return nil
}

func (m *mockPackageRepo) FindByID(_ context.Context, id string) (*model.Package, error) {
	pkg, ok := m.packages[id]
	if !ok {
		return nil, packageserrors.ErrNotFound
	}
	return pkg, nil
}

func (m *mockPackageRepo) FindAll(_ context.Context, _ *model.PackageFilter, _ int, _ int64) ([]*model.Package, error) {
	out := make([]*model.Package, 0, len(m.packages))
	for _, p := range m.packages {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPackageRepo) Count(_ context.Context, _ *model.PackageFilter) (int64, error) {
	return int64(len(m.packages)), nil
}

func (m *mockPackageRepo) Update(_ context.Context, id string, set bson.M) (*mongo.UpdateResult, error) {
	if _, ok := m.packages[id]; !ok {
		return nil, packageserrors.ErrNotFound
	}
	m.lastSet = set
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockPackageRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.packages[id]; !ok {
		return packageserrors.ErrNotFound
	}
	delete(m.packages, id)
	return nil
}

func testService(t *testing.T, repo *mockPackageRepo) PackageService {
	t.Helper()
	log := logger.New(logger.Config{Output: io.Discard})
	return NewPackageService(repo, validation.New(log), &config.Config{Log: log})
}

func price(v float64) *float64 { return &v }

func TestPackageCreate(t *testing.T) {
	repo := newMockPackageRepo()
	svc := testService(t, repo)

	pkg := &model.Package{
		Name:        "  Island   Escape  ",
		Destination: "Palawan",
		Duration:    5,
		Price:       price(499.5),
	}
	if err := svc.Create(context.Background(), pkg); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !pkg.Active {
		t.Error("new packages must default to active")
	}
	if pkg.Name != "Island Escape" {
		t.Errorf("Name = %q, want trimmed and collapsed whitespace", pkg.Name)
	}
}

func TestPackageCreateFieldErrors(t *testing.T) {
	repo := newMockPackageRepo()
	svc := testService(t, repo)

	err := svc.Create(context.Background(), &model.Package{Destination: "Palawan"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidationFailed {
		t.Fatalf("Code = %q, want %q", appErr.Code, apperrors.CodeValidationFailed)
	}

	fields := make(map[string]bool)
	for _, fe := range appErr.Fields {
		fields[fe.Field] = true
	}
	for _, want := range []string{"name", "duration", "price"} {
		if !fields[want] {
			t.Errorf("missing field error for %q, got %+v", want, appErr.Fields)
		}
	}
	if len(repo.packages) != 0 {
		t.Error("invalid package must not be persisted")
	}
}

func TestPackageUpdatePartialSet(t *testing.T) {
	repo := newMockPackageRepo()
	repo.packages["pkg-1"] = &model.Package{
		ID: "pkg-1", Name: "Island Escape", Destination: "Palawan", Duration: 5, Price: price(499.5),
	}
	svc := testService(t, repo)

	newPrice := 650.0
	updated, err := svc.Update(context.Background(), "pkg-1", &model.PackageUpdate{Price: &newPrice})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated == nil {
		t.Fatal("expected the updated package back")
	}

	if len(repo.lastSet) != 1 {
		t.Errorf("update set = %v, want only price", repo.lastSet)
	}
	if got, ok := repo.lastSet["price"]; !ok || got != 650.0 {
		t.Errorf("price in update set = %v, want 650", got)
	}
}

func TestPackageUpdateEmptyPatch(t *testing.T) {
	repo := newMockPackageRepo()
	repo.packages["pkg-1"] = &model.Package{ID: "pkg-1"}
	svc := testService(t, repo)

	_, err := svc.Update(context.Background(), "pkg-1", &model.PackageUpdate{})
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("Code = %q, want %q", appErr.Code, apperrors.CodeInvalidInput)
	}
}

func TestPackageDeleteNotFound(t *testing.T) {
	repo := newMockPackageRepo()
	svc := testService(t, repo)

	err := svc.Delete(context.Background(), "missing")
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("Code = %q, want %q", appErr.Code, apperrors.CodeNotFound)
	}
}
