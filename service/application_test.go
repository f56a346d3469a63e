package service

import (
	"context"
	"errors"
	"testing"

	"Bazaar/models"
	"Bazaar/types"

	"gorm.io/gorm"
)

// fakeApplicationStore 把审核事务模拟成两段写：结论先落，晋升可注入失败并回滚
type fakeApplicationStore struct {
	apps  map[string]*models.VendorApplication
	roles map[string]models.Role

	failPromote error
	failPending error
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{
		apps:  map[string]*models.VendorApplication{},
		roles: map[string]models.Role{},
	}
}

func (f *fakeApplicationStore) Create(_ context.Context, app *models.VendorApplication) error {
	cp := *app
	f.apps[app.ID] = &cp
	return nil
}

func (f *fakeApplicationStore) FindById(_ context.Context, id any) (*models.VendorApplication, error) {
	app, ok := f.apps[id.(string)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *app
	return &cp, nil
}

func (f *fakeApplicationStore) ListDetailed(_ context.Context) ([]types.Application, error) {
	out := []types.Application{}
	for _, app := range f.apps {
		out = append(out, types.Application{VendorApplication: *app})
	}
	return out, nil
}

func (f *fakeApplicationStore) HasPending(_ context.Context, userID string) (bool, error) {
	if f.failPending != nil {
		return false, f.failPending
	}
	for _, app := range f.apps {
		if app.UserID == userID && app.Status == models.ApplicationPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationStore) Review(_ context.Context, app *models.VendorApplication, promote bool) error {
	if promote && f.failPromote != nil {
		// 事务回滚：两段写要么都生效要么都不生效
		return f.failPromote
	}
	cp := *app
	f.apps[app.ID] = &cp
	if promote {
		f.roles[app.UserID] = models.RoleVendor
	}
	return nil
}

type fakePublisher struct {
	topics []string
	fail   error
}

func (f *fakePublisher) Publish(_ context.Context, topic string, _ []byte) error {
	if f.fail != nil {
		return f.fail
	}
	f.topics = append(f.topics, topic)
	return nil
}

func validApplication() *types.SubmitApplicationRequest {
	return &types.SubmitApplicationRequest{
		ApplicantName: "Jamie Doe",
		Email:         "jamie@example.com",
		Phone:         "555-0100",
		BusinessName:  "Jamie's Goods",
		BusinessType:  "handmade",
		Description:   "small-batch ceramics",
		Address:       "1 Kiln St",
	}
}

func TestSubmitRequiresAllFields(t *testing.T) {
	svc := &ApplicationService{Store: newFakeApplicationStore()}

	req := validApplication()
	req.BusinessName = "  "
	if _, err := svc.Submit(context.Background(), "u1", req); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// experience 是可选项
	req = validApplication()
	req.Experience = ""
	if _, err := svc.Submit(context.Background(), "u1", req); err != nil {
		t.Fatalf("submit without experience should pass, got %v", err)
	}
}

func TestSubmitRejectsSecondPendingApplication(t *testing.T) {
	store := newFakeApplicationStore()
	svc := &ApplicationService{Store: store}
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "u1", validApplication()); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.Submit(ctx, "u1", validApplication()); !errors.Is(err, ErrValidation) {
		t.Fatalf("second submit while pending should fail, got %v", err)
	}
}

func TestApprovePromotesApplicant(t *testing.T) {
	store := newFakeApplicationStore()
	events := &fakePublisher{}
	svc := &ApplicationService{Store: store, Events: events}
	ctx := context.Background()

	app, err := svc.Submit(ctx, "u1", validApplication())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	err = svc.Review(ctx, "admin-1", app.ID, &types.ReviewRequest{Decision: "approve", Notes: "looks good"})
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	got := store.apps[app.ID]
	if got.Status != models.ApplicationApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}
	if got.ReviewedBy != "admin-1" || got.ReviewedAt == nil {
		t.Fatalf("review metadata not recorded: %+v", got)
	}
	if store.roles["u1"] != models.RoleVendor {
		t.Fatalf("applicant not promoted, role=%s", store.roles["u1"])
	}
	if len(events.topics) != 1 {
		t.Fatalf("expected one published event, got %v", events.topics)
	}
}

func TestRejectDoesNotPromote(t *testing.T) {
	store := newFakeApplicationStore()
	events := &fakePublisher{}
	svc := &ApplicationService{Store: store, Events: events}
	ctx := context.Background()

	app, _ := svc.Submit(ctx, "u1", validApplication())
	if err := svc.Review(ctx, "admin-1", app.ID, &types.ReviewRequest{Decision: "reject"}); err != nil {
		t.Fatalf("review: %v", err)
	}

	if store.apps[app.ID].Status != models.ApplicationRejected {
		t.Fatalf("expected rejected, got %s", store.apps[app.ID].Status)
	}
	if _, promoted := store.roles["u1"]; promoted {
		t.Fatalf("rejected applicant must not be promoted")
	}
	if len(events.topics) != 0 {
		t.Fatalf("no event expected on rejection, got %v", events.topics)
	}
}

func TestFailedPromotionRollsBackDecision(t *testing.T) {
	store := newFakeApplicationStore()
	svc := &ApplicationService{Store: store}
	ctx := context.Background()

	app, _ := svc.Submit(ctx, "u1", validApplication())
	store.failPromote = errors.New("lock wait timeout")

	err := svc.Review(ctx, "admin-1", app.ID, &types.ReviewRequest{Decision: "approve"})
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if store.apps[app.ID].Status != models.ApplicationPending {
		t.Fatalf("decision should roll back with the promotion, got %s", store.apps[app.ID].Status)
	}
	if _, promoted := store.roles["u1"]; promoted {
		t.Fatalf("promotion must not survive a failed transaction")
	}
}

func TestReviewTerminalApplicationFails(t *testing.T) {
	store := newFakeApplicationStore()
	svc := &ApplicationService{Store: store}
	ctx := context.Background()

	app, _ := svc.Submit(ctx, "u1", validApplication())
	if err := svc.Review(ctx, "admin-1", app.ID, &types.ReviewRequest{Decision: "approve"}); err != nil {
		t.Fatalf("first review: %v", err)
	}
	err := svc.Review(ctx, "admin-2", app.ID, &types.ReviewRequest{Decision: "reject"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("re-review of a terminal application should fail, got %v", err)
	}
	if store.apps[app.ID].Status != models.ApplicationApproved {
		t.Fatalf("terminal status must not change, got %s", store.apps[app.ID].Status)
	}
}

func TestReviewValidatesDecisionAndExistence(t *testing.T) {
	store := newFakeApplicationStore()
	svc := &ApplicationService{Store: store}
	ctx := context.Background()

	app, _ := svc.Submit(ctx, "u1", validApplication())
	if err := svc.Review(ctx, "admin-1", app.ID, &types.ReviewRequest{Decision: "maybe"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown decision should fail validation, got %v", err)
	}
	if err := svc.Review(ctx, "admin-1", "no-such-id", &types.ReviewRequest{Decision: "approve"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing application should be not found, got %v", err)
	}
}

func TestApprovalEventFailureDoesNotFailReview(t *testing.T) {
	store := newFakeApplicationStore()
	events := &fakePublisher{fail: errors.New("broker down")}
	svc := &ApplicationService{Store: store, Events: events}
	ctx := context.Background()

	app, _ := svc.Submit(ctx, "u1", validApplication())
	if err := svc.Review(ctx, "admin-1", app.ID, &types.ReviewRequest{Decision: "approve"}); err != nil {
		t.Fatalf("review should succeed even when the event cannot be published, got %v", err)
	}
	if store.apps[app.ID].Status != models.ApplicationApproved {
		t.Fatalf("approval not persisted")
	}
}
