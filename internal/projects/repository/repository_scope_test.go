package repository

import (
	"strings"
	"testing"
)

// These tests pin the ownership scoping and locking behavior of the SQL.
// Dropping a user_id predicate or a FOR UPDATE clause would let one account
// read or mutate another account's data, or let two approvals race.

func TestOwnerScopedQueries(t *testing.T) {
	scoped := map[string]string{
		"materials pricing":  queryMaterialsPricing,
		"list projects":      queryListProjects,
		"get project":        queryGetProject,
		"lock project":       queryLockProject,
		"lock material":      queryLockMaterial,
		"set project status": querySetProjectStatus,
	}

	for name, query := range scoped {
		if !strings.Contains(query, "user_id = $") {
			t.Errorf("%s query is not scoped by owner:\n%s", name, query)
		}
	}
}

func TestApprovalQueriesTakeRowLocks(t *testing.T) {
	locking := map[string]string{
		"lock project":  queryLockProject,
		"lock material": queryLockMaterial,
	}

	for name, query := range locking {
		if !strings.Contains(query, "FOR UPDATE") {
			t.Errorf("%s query does not lock the row:\n%s", name, query)
		}
	}
}

func TestStockDecrementIsGuarded(t *testing.T) {
	if !strings.Contains(queryDecrementStock, "stock = stock - $2") {
		t.Errorf("stock decrement is not relative:\n%s", queryDecrementStock)
	}
	if !strings.Contains(queryDecrementStock, "stock >= $2") {
		t.Errorf("stock decrement has no sufficiency guard:\n%s", queryDecrementStock)
	}
}

func TestItemQueriesPreserveLineOrder(t *testing.T) {
	ordered := map[string]string{
		"items for projects": queryItemsForProjects,
		"items for approval": queryItemsForApproval,
	}

	for name, query := range ordered {
		if !strings.Contains(query, "ORDER BY") || !strings.Contains(query, "position") {
			t.Errorf("%s query does not order by position:\n%s", name, query)
		}
	}
}
