package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	saleDomain "affiliate-hub-backend/internal/domain/sale"
	"affiliate-hub-backend/pkg/apperr"
)

func TestSaleCreate_LeavesUpdatedAtNil(t *testing.T) {
	_, repo, _, _ := testRepos(t)
	ctx := context.Background()

	s := makeSale(1, "Cliente Uno", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID == 0 {
		t.Fatalf("Create did not assign an id")
	}

	got, err := repo.GetByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.UpdatedAt != nil {
		t.Errorf("updatedAt must stay nil on create, got %v", got.UpdatedAt)
	}
	if got.Status != saleDomain.StatusPending {
		t.Errorf("status: %s", got.Status)
	}
}

func TestSaleUpdate_StampsUpdatedAt(t *testing.T) {
	_, repo, _, _ := testRepos(t)
	ctx := context.Background()

	s := makeSale(1, "Cliente Uno", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Update(ctx, s.ID, map[string]any{"status": saleDomain.StatusVerified}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.GetByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != saleDomain.StatusVerified {
		t.Errorf("status not merged: %s", got.Status)
	}
	if got.UpdatedAt == nil {
		t.Errorf("updatedAt not stamped by update")
	}
}

func TestSaleUpdate_Missing(t *testing.T) {
	_, repo, _, _ := testRepos(t)
	err := repo.Update(context.Background(), 999, map[string]any{"notes": "x"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSaleDelete_Idempotent(t *testing.T) {
	_, repo, _, _ := testRepos(t)
	ctx := context.Background()
	if err := repo.Delete(ctx, 999); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(ctx, 999); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestSaleList_OrderAndTies(t *testing.T) {
	_, repo, _, _ := testRepos(t)
	ctx := context.Background()

	d1 := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	// Two sales share d1; they must come back in insertion order.
	first := makeSale(1, "Empate A", d1)
	second := makeSale(1, "Empate B", d1)
	newest := makeSale(2, "Reciente", d2)
	for _, s := range []*saleDomain.Sale{first, second, newest} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	rows, err := repo.List(ctx, saleDomain.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len=%d", len(rows))
	}
	if rows[0].ClientName != "Reciente" {
		t.Errorf("not saleDate descending: %s first", rows[0].ClientName)
	}
	if rows[1].ClientName != "Empate A" || rows[2].ClientName != "Empate B" {
		t.Errorf("tie not in insertion order: %s, %s", rows[1].ClientName, rows[2].ClientName)
	}
}

func TestSaleList_FiltersCompose(t *testing.T) {
	_, repo, _, _ := testRepos(t)
	ctx := context.Background()

	d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	a := makeSale(1, "A", d)
	b := makeSale(1, "B", d)
	b.Status = saleDomain.StatusPaid
	c := makeSale(2, "C", d)
	c.Status = saleDomain.StatusPaid
	for _, s := range []*saleDomain.Sale{a, b, c} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	rows, err := repo.List(ctx, saleDomain.Filter{Status: saleDomain.StatusPaid})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("status filter: len=%d", len(rows))
	}

	rows, err = repo.List(ctx, saleDomain.Filter{Status: saleDomain.StatusPaid, AffiliateID: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 || rows[0].ClientName != "C" {
		t.Fatalf("AND compose: %+v", rows)
	}
}

func TestSaleListByAffiliate(t *testing.T) {
	_, repo, _, _ := testRepos(t)
	ctx := context.Background()

	d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, s := range []*saleDomain.Sale{makeSale(7, "Uno", d), makeSale(8, "Otro", d), makeSale(7, "Dos", d)} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	rows, err := repo.ListByAffiliate(ctx, 7)
	if err != nil {
		t.Fatalf("ListByAffiliate: %v", err)
	}
	if len(rows) != 2 || rows[0].ClientName != "Uno" || rows[1].ClientName != "Dos" {
		t.Fatalf("history: %+v", rows)
	}
}
