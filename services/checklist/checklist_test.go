package checklist

import (
	"errors"
	"fmt"
	"testing"

	"dealroom/models"
)

type fakeChecklistRepo struct {
	items map[string]*models.ChecklistItem
	order []string
}

func newFakeChecklistRepo() *fakeChecklistRepo {
	return &fakeChecklistRepo{items: map[string]*models.ChecklistItem{}}
}

func (r *fakeChecklistRepo) Create(item *models.ChecklistItem) error {
	copied := *item
	r.items[item.ID] = &copied
	r.order = append(r.order, item.ID)
	return nil
}

func (r *fakeChecklistRepo) GetByID(id string) (*models.ChecklistItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("checklist item with id %s not found", id)
	}
	copied := *item
	return &copied, nil
}

func (r *fakeChecklistRepo) ListByDeal(dealID string) ([]models.ChecklistItem, error) {
	var out []models.ChecklistItem
	for _, id := range r.order {
		if item := r.items[id]; item.DealID == dealID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeChecklistRepo) Update(item *models.ChecklistItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("checklist item with id %s not found", item.ID)
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

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

var issuer = &models.User{ID: "u1", Role: "Issuer"}

func newTestService() (*DefaultChecklistService, *fakeActivityRepo) {
	activity := &fakeActivityRepo{}
	return &DefaultChecklistService{Repo: newFakeChecklistRepo(), Activity: activity}, activity
}

func TestAddItem(t *testing.T) {
	svc, _ := newTestService()

	item, err := svc.AddItem(issuer, "d1", models.ChecklistCreateRequest{
		Title: "Executed credit agreement", OwnerRole: "issuer",
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.Done {
		t.Fatal("new items start incomplete")
	}
	if item.OwnerRole != "Issuer" {
		t.Fatalf("owner role should be normalized, got %q", item.OwnerRole)
	}
}

func TestAddItemRequiresCapability(t *testing.T) {
	svc, _ := newTestService()
	investor := &models.User{ID: "u2", Role: "Investor"}
	if _, err := svc.AddItem(investor, "d1", models.ChecklistCreateRequest{Title: "x"}); !errors.Is(err, ErrNotPermitted) {
		t.Fatalf("investors cannot manage the checklist, got %v", err)
	}
}

func TestSetDoneAndReopen(t *testing.T) {
	svc, activity := newTestService()
	item, err := svc.AddItem(issuer, "d1", models.ChecklistCreateRequest{Title: "KYC complete"})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	done, err := svc.SetDone(issuer, item.ID, true)
	if err != nil {
		t.Fatalf("SetDone: %v", err)
	}
	if !done.Done || done.CompletedAt == nil || done.CompletedBy != issuer.ID {
		t.Fatalf("completion metadata missing: %+v", done)
	}

	reopened, err := svc.SetDone(issuer, item.ID, false)
	if err != nil {
		t.Fatalf("SetDone(false): %v", err)
	}
	if reopened.Done || reopened.CompletedAt != nil || reopened.CompletedBy != "" {
		t.Fatalf("reopening should clear completion metadata: %+v", reopened)
	}

	var actions []string
	for _, e := range activity.entries {
		actions = append(actions, e.Action)
	}
	want := []string{"checklist.item_added", "checklist.item_completed", "checklist.item_reopened"}
	if len(actions) != len(want) {
		t.Fatalf("audit actions = %v, want %v", actions, want)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Fatalf("audit actions = %v, want %v", actions, want)
		}
	}
}

func TestListItemsKeepsCreationOrder(t *testing.T) {
	svc, _ := newTestService()
	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.AddItem(issuer, "d1", models.ChecklistCreateRequest{Title: title}); err != nil {
			t.Fatalf("AddItem(%s): %v", title, err)
		}
	}

	items, err := svc.ListItems("d1")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 3 || items[0].Title != "first" || items[2].Title != "third" {
		t.Fatalf("unexpected list: %+v", items)
	}
}
