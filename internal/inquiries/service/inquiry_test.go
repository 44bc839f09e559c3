package service

import (
	"context"
	"io"
	"testing"
	"time"

	inquirieserrors "tripora/internal/inquiries/errors"
	"tripora/internal/mail"
	packageserrors "tripora/internal/packages/errors"
	"tripora/pkg/config"
	apperrors "tripora/pkg/errors"
	"tripora/pkg/logger"
	"tripora/pkg/model"
	"tripora/pkg/validation"
)

type mockInquiryRepo struct {
	created   *model.Inquiry
	inquiries map[string]*model.Inquiry
}

func newMockInquiryRepo() *mockInquiryRepo {
	return &mockInquiryRepo{inquiries: make(map[string]*model.Inquiry)}
}

func (m *mockInquiryRepo) Create(_ context.Context, inquiry *model.Inquiry) error {
	inquiry.ID = "inq-1"
	m.created = inquiry
	m.inquiries[inquiry.ID] = inquiry
	return nil
}

func (m *mockInquiryRepo) FindByID(_ context.Context, id string) (*model.Inquiry, error) {
	inquiry, ok := m.inquiries[id]
	if !ok {
		return nil, inquirieserrors.ErrNotFound
	}
	return inquiry, nil
}

func (m *mockInquiryRepo) FindAll(_ context.Context, _ int, _ int64) ([]*model.Inquiry, error) {
	out := make([]*model.Inquiry, 0, len(m.inquiries))
	for _, i := range m.inquiries {
		out = append(out, i)
	}
	return out, nil
}

func (m *mockInquiryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.inquiries)), nil
}

func (m *mockInquiryRepo) UpdateStatus(_ context.Context, id string, status string) error {
	inquiry, ok := m.inquiries[id]
	if !ok {
		return inquirieserrors.ErrNotFound
	}
	inquiry.Status = status
	return nil
}

type mockPackageResolver struct {
	packages map[string]*model.Package
}

func (m *mockPackageResolver) FindByID(_ context.Context, id string) (*model.Package, error) {
	pkg, ok := m.packages[id]
	if !ok {
		return nil, packageserrors.ErrNotFound
	}
	return pkg, nil
}

type mockNotifier struct {
	sends chan mail.Kind
}

func (m *mockNotifier) Send(kind mail.Kind, _ mail.Data) mail.Result {
	m.sends <- kind
	return mail.Result{Success: true, MessageID: "msg-1"}
}

type mockPublisher struct {
	published chan string
}

func (m *mockPublisher) Publish(_ context.Context, eventType, _ string, _ any) error {
	m.published <- eventType
	return nil
}

func testService(t *testing.T, repo *mockInquiryRepo, resolver *mockPackageResolver) (InquiryService, *mockNotifier, *mockPublisher) {
	t.Helper()
	log := logger.New(logger.Config{Output: io.Discard})
	notifier := &mockNotifier{sends: make(chan mail.Kind, 4)}
	publisher := &mockPublisher{published: make(chan string, 2)}
	cfg := &config.Config{Log: log, AdminEmail: "admin@tripora.test"}
	svc := NewInquiryService(repo, resolver, notifier, publisher, validation.New(log), cfg)
	return svc, notifier, publisher
}

func price(v float64) *float64 { return &v }

func resolverWithPackage() *mockPackageResolver {
	return &mockPackageResolver{packages: map[string]*model.Package{
		"pkg-1": {ID: "pkg-1", Name: "Island Escape", Destination: "Palawan", Price: price(499.5), Duration: 5},
	}}
}

func validInquiry() *model.Inquiry {
	return &model.Inquiry{
		Name:    "Sam Okafor",
		Email:   "sam@example.com",
		Message: "We are a family of four interested in the Palawan trip this December.",
	}
}

func TestInquiryCreateDefaultsStatusAndNotifies(t *testing.T) {
	repo := newMockInquiryRepo()
	svc, notifier, publisher := testService(t, repo, resolverWithPackage())

	inquiry := validInquiry()
	if err := svc.Create(context.Background(), inquiry); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if inquiry.Status != model.InquiryStatusNew {
		t.Errorf("Status = %q, want %q", inquiry.Status, model.InquiryStatusNew)
	}
	if repo.created == nil {
		t.Fatal("expected inquiry to be persisted")
	}

	got := make(map[mail.Kind]bool)
	for i := 0; i < 2; i++ {
		select {
		case kind := <-notifier.sends:
			got[kind] = true
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for mail sends, got %v", got)
		}
	}
	if !got[mail.KindInquiryAck] || !got[mail.KindInquiryAlert] {
		t.Errorf("expected acknowledgement and alert sends, got %v", got)
	}

	select {
	case eventType := <-publisher.published:
		if eventType != "inquiry.created" {
			t.Errorf("event type = %q, want inquiry.created", eventType)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for inquiry.created event")
	}
}

func TestInquiryCreatePhoneOptional(t *testing.T) {
	repo := newMockInquiryRepo()
	svc, _, _ := testService(t, repo, resolverWithPackage())

	inquiry := validInquiry()
	inquiry.Phone = ""
	if err := svc.Create(context.Background(), inquiry); err != nil {
		t.Fatalf("Create() without phone error = %v", err)
	}
}

func TestInquiryCreateUnknownPackage(t *testing.T) {
	repo := newMockInquiryRepo()
	svc, _, _ := testService(t, repo, &mockPackageResolver{packages: map[string]*model.Package{}})

	inquiry := validInquiry()
	inquiry.PackageID = "missing"
	err := svc.Create(context.Background(), inquiry)
	appErr := requireAppError(t, err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("Code = %q, want %q", appErr.Code, apperrors.CodeNotFound)
	}
	if repo.created != nil {
		t.Error("inquiry must not be persisted when packageId does not resolve")
	}
}

func TestInquiryCreateShortMessage(t *testing.T) {
	repo := newMockInquiryRepo()
	svc, _, _ := testService(t, repo, resolverWithPackage())

	inquiry := validInquiry()
	inquiry.Message = "too short"
	err := svc.Create(context.Background(), inquiry)
	appErr := requireAppError(t, err)
	if appErr.Code != apperrors.CodeValidationFailed {
		t.Fatalf("Code = %q, want %q", appErr.Code, apperrors.CodeValidationFailed)
	}

	found := false
	for _, fe := range appErr.Fields {
		if fe.Field == "message" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a field error citing message, got %+v", appErr.Fields)
	}
}

func TestInquiryUpdateStatusEmbedsPackage(t *testing.T) {
	repo := newMockInquiryRepo()
	repo.inquiries["inq-1"] = &model.Inquiry{
		ID:        "inq-1",
		Name:      "Sam Okafor",
		Email:     "sam@example.com",
		PackageID: "pkg-1",
		Status:    model.InquiryStatusNew,
	}
	svc, _, _ := testService(t, repo, resolverWithPackage())

	updated, err := svc.UpdateStatus(context.Background(), "inq-1", model.InquiryStatusRead)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != model.InquiryStatusRead {
		t.Errorf("Status = %q, want %q", updated.Status, model.InquiryStatusRead)
	}
	if updated.Package == nil {
		t.Fatal("expected embedded package summary")
	}
	if updated.Package.Name != "Island Escape" || updated.Package.Price != 499.5 {
		t.Errorf("unexpected package summary: %+v", updated.Package)
	}
}

func TestInquiryUpdateStatusWithoutPackage(t *testing.T) {
	repo := newMockInquiryRepo()
	repo.inquiries["inq-1"] = &model.Inquiry{ID: "inq-1", Status: model.InquiryStatusNew}
	svc, _, _ := testService(t, repo, resolverWithPackage())

	updated, err := svc.UpdateStatus(context.Background(), "inq-1", model.InquiryStatusResponded)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Package != nil {
		t.Errorf("Package = %+v, want nil for an inquiry without packageId", updated.Package)
	}
}

func TestInquiryUpdateStatusInvalid(t *testing.T) {
	repo := newMockInquiryRepo()
	repo.inquiries["inq-1"] = &model.Inquiry{ID: "inq-1", Status: model.InquiryStatusNew}
	svc, _, _ := testService(t, repo, resolverWithPackage())

	_, err := svc.UpdateStatus(context.Background(), "inq-1", "archived")
	appErr := requireAppError(t, err)
	if appErr.Code != apperrors.CodeInvalidStatus {
		t.Errorf("Code = %q, want %q", appErr.Code, apperrors.CodeInvalidStatus)
	}
}

func requireAppError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !apperrors.IsAppError(err) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return apperrors.AsAppError(err)
}
