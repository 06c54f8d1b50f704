package document

import (
	"errors"
	"testing"
	"time"

	"dealroom/models"
)

type fakeDocumentRepo struct {
	docs []models.Document
}

func (r *fakeDocumentRepo) Create(doc *models.Document) error {
	r.docs = append(r.docs, *doc)
	return nil
}

func (r *fakeDocumentRepo) ListByDeal(dealID string) ([]models.Document, error) {
	var out []models.Document
	for _, d := range r.docs {
		if d.DealID == dealID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) Delete(id string) error {
	for i, d := range r.docs {
		if d.ID == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return errors.New("document not found")
}

type fakeInvitationRepo struct {
	inv *models.Invitation
}

func (r *fakeInvitationRepo) Create(inv *models.Invitation) error { return nil }

func (r *fakeInvitationRepo) GetByDealAndLender(dealID, lenderID string) (*models.Invitation, error) {
	if r.inv != nil && r.inv.DealID == dealID && r.inv.LenderID == lenderID {
		return r.inv, nil
	}
	return nil, nil
}

func (r *fakeInvitationRepo) ListByDeal(dealID string) ([]models.Invitation, error) {
	return nil, nil
}

func (r *fakeInvitationRepo) ListByLender(lenderID string) ([]models.Invitation, error) {
	return nil, nil
}

func (r *fakeInvitationRepo) Update(inv *models.Invitation) error { return nil }

type fakeActivityRepo struct {
	entries []models.Activity
}

func (r *fakeActivityRepo) Append(entry *models.Activity) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeActivityRepo) ListByDeal(dealID string, limit int64) ([]models.Activity, error) {
	return r.entries, nil
}

func newTestService(inv *models.Invitation) *DefaultDocumentService {
	return &DefaultDocumentService{
		Repo:        &fakeDocumentRepo{},
		Invitations: &fakeInvitationRepo{inv: inv},
		Activity:    &fakeActivityRepo{},
	}
}

func seedDocs(svc *DefaultDocumentService, t *testing.T) {
	actor := &models.User{ID: "u-br", Role: "Bookrunner"}
	for _, d := range []models.DocumentCreateRequest{
		{Name: "Teaser", Category: "marketing", Tier: models.AccessTierEarly},
		{Name: "Model", Category: "financials", Tier: models.AccessTierFull},
		{Name: "Credit Agreement", Category: "legal", Tier: models.AccessTierLegal},
	} {
		if _, err := svc.AddDocument(actor, "d1", d); err != nil {
			t.Fatalf("AddDocument(%s): %v", d.Name, err)
		}
	}
}

func TestAddDocumentDefaultsTier(t *testing.T) {
	svc := newTestService(nil)
	doc, err := svc.AddDocument(&models.User{ID: "u1", Role: "Issuer"}, "d1",
		models.DocumentCreateRequest{Name: "Teaser"})
	if err != nil {
		t.Fatalf("AddDocument: %v", err)
	}
	if doc.Tier != models.AccessTierEarly {
		t.Fatalf("tier should default to early, got %q", doc.Tier)
	}
}

func TestAddDocumentRejectsBadTier(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.AddDocument(&models.User{ID: "u1", Role: "Issuer"}, "d1",
		models.DocumentCreateRequest{Name: "X", Tier: "secret"})
	if !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("expected ErrInvalidTier, got %v", err)
	}
}

func TestAddDocumentRequiresCapability(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.AddDocument(&models.User{ID: "u1", Role: "Investor"}, "d1",
		models.DocumentCreateRequest{Name: "X"})
	if !errors.Is(err, ErrNotPermitted) {
		t.Fatalf("expected ErrNotPermitted, got %v", err)
	}
}

func TestListDocumentsArrangerSeesAll(t *testing.T) {
	svc := newTestService(nil)
	seedDocs(svc, t)

	docs, err := svc.ListDocuments(&models.User{ID: "u1", Role: "Issuer"}, "d1")
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("issuer should see all 3 documents, got %d", len(docs))
	}
}

func TestListDocumentsInvestorFilteredByTier(t *testing.T) {
	tests := []struct {
		tier string
		want int
	}{
		{models.AccessTierEarly, 1},
		{models.AccessTierFull, 2},
		{models.AccessTierLegal, 3},
	}
	for _, tt := range tests {
		svc := newTestService(&models.Invitation{
			DealID: "d1", LenderID: "l1", NDARequired: false, AccessTier: tt.tier,
		})
		seedDocs(svc, t)

		u := &models.User{ID: "u1", Role: "Investor", LenderID: "l1"}
		docs, err := svc.ListDocuments(u, "d1")
		if err != nil {
			t.Fatalf("tier %s: ListDocuments: %v", tt.tier, err)
		}
		if len(docs) != tt.want {
			t.Fatalf("tier %s: expected %d documents, got %d", tt.tier, tt.want, len(docs))
		}
	}
}

func TestListDocumentsUnsignedNDAHidesEverything(t *testing.T) {
	svc := newTestService(&models.Invitation{
		DealID: "d1", LenderID: "l1", NDARequired: true, AccessTier: models.AccessTierLegal,
	})
	seedDocs(svc, t)

	u := &models.User{ID: "u1", Role: "Investor", LenderID: "l1"}
	docs, err := svc.ListDocuments(u, "d1")
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("unsigned NDA should hide the data room, got %d documents", len(docs))
	}
}

func TestListDocumentsSignedNDAOpensDataRoom(t *testing.T) {
	signedAt := time.Now()
	svc := newTestService(&models.Invitation{
		DealID: "d1", LenderID: "l1", NDARequired: true, NDASignedAt: &signedAt,
		AccessTier: models.AccessTierFull,
	})
	seedDocs(svc, t)

	u := &models.User{ID: "u1", Role: "Investor", LenderID: "l1"}
	docs, err := svc.ListDocuments(u, "d1")
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("signed full-tier investor should see 2 documents, got %d", len(docs))
	}
}

func TestListDocumentsUninvitedInvestorSeesNothing(t *testing.T) {
	svc := newTestService(nil)
	seedDocs(svc, t)

	u := &models.User{ID: "u1", Role: "Investor", LenderID: "l9"}
	docs, err := svc.ListDocuments(u, "d1")
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("uninvited investor should see nothing, got %d documents", len(docs))
	}
}

func TestRemoveDocument(t *testing.T) {
	svc := newTestService(nil)
	doc, err := svc.AddDocument(&models.User{ID: "u1", Role: "Bookrunner"}, "d1",
		models.DocumentCreateRequest{Name: "Teaser"})
	if err != nil {
		t.Fatalf("AddDocument: %v", err)
	}

	if err := svc.RemoveDocument(&models.User{ID: "u1", Role: "Bookrunner"}, "d1", doc.ID); err != nil {
		t.Fatalf("RemoveDocument: %v", err)
	}
	docs, _ := svc.ListDocuments(&models.User{ID: "u1", Role: "Bookrunner"}, "d1")
	if len(docs) != 0 {
		t.Fatalf("document should be gone, got %d", len(docs))
	}

	if err := svc.RemoveDocument(&models.User{ID: "u2", Role: "Investor"}, "d1", doc.ID); !errors.Is(err, ErrNotPermitted) {
		t.Fatalf("investor cannot remove documents, got %v", err)
	}
}
