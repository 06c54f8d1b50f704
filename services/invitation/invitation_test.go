package invitation

import (
	"errors"
	"fmt"
	"testing"

	"dealroom/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeInvitationRepo struct {
	invs map[string]*models.Invitation
}

func newFakeInvitationRepo(invs ...*models.Invitation) *fakeInvitationRepo {
	r := &fakeInvitationRepo{invs: map[string]*models.Invitation{}}
	for _, inv := range invs {
		copied := *inv
		r.invs[inv.DealID+"/"+inv.LenderID] = &copied
	}
	return r
}

func (r *fakeInvitationRepo) Create(inv *models.Invitation) error {
	key := inv.DealID + "/" + inv.LenderID
	if _, ok := r.invs[key]; ok {
		return fmt.Errorf("lender %s is already invited to deal %s", inv.LenderID, inv.DealID)
	}
	copied := *inv
	r.invs[key] = &copied
	return nil
}

func (r *fakeInvitationRepo) GetByDealAndLender(dealID, lenderID string) (*models.Invitation, error) {
	inv, ok := r.invs[dealID+"/"+lenderID]
	if !ok {
		return nil, nil
	}
	copied := *inv
	return &copied, nil
}

func (r *fakeInvitationRepo) ListByDeal(dealID string) ([]models.Invitation, error) {
	var out []models.Invitation
	for _, inv := range r.invs {
		if inv.DealID == dealID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) ListByLender(lenderID string) ([]models.Invitation, error) {
	var out []models.Invitation
	for _, inv := range r.invs {
		if inv.LenderID == lenderID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) Update(inv *models.Invitation) error {
	key := inv.DealID + "/" + inv.LenderID
	if _, ok := r.invs[key]; !ok {
		return fmt.Errorf("invitation not found")
	}
	copied := *inv
	r.invs[key] = &copied
	return nil
}

type fakeLenderRepo struct {
	lenders map[string]*models.Lender
}

func (r *fakeLenderRepo) GetByID(id string) (*models.Lender, error) {
	l, ok := r.lenders[id]
	if !ok {
		return nil, fmt.Errorf("lender with id %s not found", id)
	}
	return l, nil
}

func (r *fakeLenderRepo) GetAll() ([]models.Lender, error) {
	var out []models.Lender
	for _, l := range r.lenders {
		out = append(out, *l)
	}
	return out, nil
}

func (r *fakeLenderRepo) Create(l *models.Lender) error {
	r.lenders[l.ID] = l
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return r.GetByID(id)
}

func (r *fakeUserRepo) GrantDealAccess(userID, dealID string) error {
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user with id %s not found", userID)
	}
	for _, d := range u.DealAccess {
		if d == dealID {
			return nil
		}
	}
	u.DealAccess = append(u.DealAccess, dealID)
	return nil
}

func (r *fakeUserRepo) SetTokenHash(userID, tokenHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user with id %s not found", userID)
	}
	u.TokenHash = tokenHash
	return nil
}

func (r *fakeUserRepo) FindByLenderID(lenderID string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.LenderID == lenderID {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeActivityRepo struct {
	entries []models.Activity
}

func (r *fakeActivityRepo) Append(entry *models.Activity) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeActivityRepo) ListByDeal(dealID string, limit int64) ([]models.Activity, error) {
	var out []models.Activity
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].DealID == dealID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func newTestService() (*DefaultInvitationService, *fakeUserRepo) {
	users := &fakeUserRepo{users: map[string]*models.User{
		"u-inv": {ID: "u-inv", Role: "Investor", LenderID: "l1"},
	}}
	return &DefaultInvitationService{
		Repo: newFakeInvitationRepo(),
		Lenders: &fakeLenderRepo{lenders: map[string]*models.Lender{
			"l1": {ID: "l1", Name: "Meridian Credit"},
		}},
		Users:    users,
		Activity: &fakeActivityRepo{},
	}, users
}

var bookrunner = &models.User{ID: "u-br", Role: "Bookrunner"}

func TestInviteLender(t *testing.T) {
	svc, users := newTestService()

	inv, err := svc.InviteLender(bookrunner, "d1", models.InvitationCreateRequest{
		LenderID: "l1", Email: "desk@meridian.example", NDARequired: true,
	})
	if err != nil {
		t.Fatalf("InviteLender: %v", err)
	}
	if inv.Status != models.InvitationStatusPending {
		t.Fatalf("status = %q, want pending", inv.Status)
	}
	if inv.AccessTier != models.AccessTierEarly {
		t.Fatalf("tier should default to early, got %q", inv.AccessTier)
	}
	if len(inv.TierHistory) != 1 || inv.TierHistory[0].Tier != models.AccessTierEarly {
		t.Fatalf("tier history should be seeded: %+v", inv.TierHistory)
	}
	if !users.users["u-inv"].HasDealAccess("d1") {
		t.Fatal("lender's users should be granted deal access")
	}
}

func TestInviteLenderTwiceFails(t *testing.T) {
	svc, _ := newTestService()
	req := models.InvitationCreateRequest{LenderID: "l1", Email: "desk@meridian.example"}

	if _, err := svc.InviteLender(bookrunner, "d1", req); err != nil {
		t.Fatalf("first invite: %v", err)
	}
	if _, err := svc.InviteLender(bookrunner, "d1", req); err == nil {
		t.Fatal("second invite for the same (deal, lender) should fail")
	}
}

func TestInviteLenderUnknownLender(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.InviteLender(bookrunner, "d1", models.InvitationCreateRequest{
		LenderID: "missing", Email: "x@example.com",
	})
	if err == nil {
		t.Fatal("inviting an unknown lender should fail")
	}
}

func TestInviteLenderRequiresCapability(t *testing.T) {
	svc, _ := newTestService()
	for _, role := range []string{"Issuer", "Investor"} {
		_, err := svc.InviteLender(&models.User{ID: "x", Role: role}, "d1",
			models.InvitationCreateRequest{LenderID: "l1", Email: "x@example.com"})
		if !errors.Is(err, ErrNotPermitted) {
			t.Fatalf("role %s: expected ErrNotPermitted, got %v", role, err)
		}
	}
}

func TestInviteLenderRejectsBadTier(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.InviteLender(bookrunner, "d1", models.InvitationCreateRequest{
		LenderID: "l1", Email: "x@example.com", AccessTier: "platinum",
	})
	if !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("expected ErrInvalidTier, got %v", err)
	}
}

func TestSignNDA(t *testing.T) {
	svc, _ := newTestService()
	svc.Repo = newFakeInvitationRepo(&models.Invitation{
		DealID: "d1", LenderID: "l1", NDARequired: true, Status: models.InvitationStatusPending,
	})
	investor := &models.User{ID: "u-inv", Role: "Investor", LenderID: "l1"}

	inv, err := svc.SignNDA(investor, "d1")
	if err != nil {
		t.Fatalf("SignNDA: %v", err)
	}
	if inv.NDASignedAt == nil {
		t.Fatal("signature timestamp should be set")
	}
	if inv.Status != models.InvitationStatusAccepted {
		t.Fatalf("status = %q, want accepted", inv.Status)
	}
	if !inv.NDASigned() {
		t.Fatal("invitation should read as signed")
	}
}

func TestSignNDAIdempotent(t *testing.T) {
	svc, _ := newTestService()
	svc.Repo = newFakeInvitationRepo(&models.Invitation{
		DealID: "d1", LenderID: "l1", NDARequired: true,
	})
	investor := &models.User{ID: "u-inv", Role: "Investor", LenderID: "l1"}

	first, err := svc.SignNDA(investor, "d1")
	if err != nil {
		t.Fatalf("first SignNDA: %v", err)
	}
	second, err := svc.SignNDA(investor, "d1")
	if err != nil {
		t.Fatalf("second SignNDA: %v", err)
	}
	if !first.NDASignedAt.Equal(*second.NDASignedAt) {
		t.Fatal("re-signing should not move the signature timestamp")
	}
}

func TestSignNDAWithoutInvitation(t *testing.T) {
	svc, _ := newTestService()
	investor := &models.User{ID: "u-inv", Role: "Investor", LenderID: "l1"}
	if _, err := svc.SignNDA(investor, "d1"); !errors.Is(err, ErrNotInvited) {
		t.Fatalf("expected ErrNotInvited, got %v", err)
	}
}

func TestSignNDANoneRequired(t *testing.T) {
	svc, _ := newTestService()
	svc.Repo = newFakeInvitationRepo(&models.Invitation{
		DealID: "d1", LenderID: "l1", NDARequired: false,
	})
	investor := &models.User{ID: "u-inv", Role: "Investor", LenderID: "l1"}
	if _, err := svc.SignNDA(investor, "d1"); !errors.Is(err, ErrNoNDARequired) {
		t.Fatalf("expected ErrNoNDARequired, got %v", err)
	}
}

func TestChangeTier(t *testing.T) {
	svc, _ := newTestService()
	svc.Repo = newFakeInvitationRepo(&models.Invitation{
		DealID: "d1", LenderID: "l1", AccessTier: models.AccessTierEarly,
		TierHistory: []models.TierChange{{Tier: models.AccessTierEarly}},
	})

	inv, err := svc.ChangeTier(bookrunner, "d1", "l1", models.AccessTierFull)
	if err != nil {
		t.Fatalf("ChangeTier: %v", err)
	}
	if inv.AccessTier != models.AccessTierFull {
		t.Fatalf("tier = %q, want full", inv.AccessTier)
	}
	if len(inv.TierHistory) != 2 || inv.TierHistory[1].Tier != models.AccessTierFull {
		t.Fatalf("tier history should record the change: %+v", inv.TierHistory)
	}
}

func TestChangeTierSameTierIsNoOp(t *testing.T) {
	svc, _ := newTestService()
	svc.Repo = newFakeInvitationRepo(&models.Invitation{
		DealID: "d1", LenderID: "l1", AccessTier: models.AccessTierFull,
		TierHistory: []models.TierChange{{Tier: models.AccessTierFull}},
	})

	inv, err := svc.ChangeTier(bookrunner, "d1", "l1", models.AccessTierFull)
	if err != nil {
		t.Fatalf("ChangeTier: %v", err)
	}
	if len(inv.TierHistory) != 1 {
		t.Fatal("no-op tier change should not grow the history")
	}
}

func TestChangeTierValidation(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.ChangeTier(bookrunner, "d1", "l1", "vip"); !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("expected ErrInvalidTier, got %v", err)
	}
	if _, err := svc.ChangeTier(bookrunner, "d1", "l1", models.AccessTierFull); !errors.Is(err, ErrNotInvited) {
		t.Fatalf("expected ErrNotInvited, got %v", err)
	}
	if _, err := svc.ChangeTier(&models.User{Role: "Issuer"}, "d1", "l1", models.AccessTierFull); !errors.Is(err, ErrNotPermitted) {
		t.Fatalf("issuer cannot change tiers, got %v", err)
	}
}
