package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

func strPtr(s string) *string { return &s }

func TestCategoryRepository_CreateAndList(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)
	owner := createUser(t, db, "alice")

	food, err := repo.Create(ctx, owner, domain.CategoryInput{Name: "Food", Type: domain.TypeExpense, Icon: strPtr("🍔")})
	require.NoError(t, err)
	assert.NotZero(t, food.ID)
	assert.Equal(t, owner, food.UserID)
	assert.Equal(t, "🍔", *food.Icon)

	_, err = repo.Create(ctx, owner, domain.CategoryInput{Name: "Salary", Type: domain.TypeIncome})
	require.NoError(t, err)
	_, err = repo.Create(ctx, owner, domain.CategoryInput{Name: "Bills", Type: domain.TypeExpense})
	require.NoError(t, err)

	all, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Bills", "Food", "Salary"}, []string{all[0].Name, all[1].Name, all[2].Name})

	expenses, err := repo.ListByOwnerAndType(ctx, owner, domain.TypeExpense)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Bills", expenses[0].Name)
	assert.Nil(t, expenses[0].Icon)
}

func TestCategoryRepository_OwnerScoping(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	category, err := repo.Create(ctx, alice, domain.CategoryInput{Name: "Food", Type: domain.TypeExpense})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, bob, category.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	updated, err := repo.Update(ctx, bob, category.ID, domain.CategoryInput{Name: "Hacked", Type: domain.TypeIncome})
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := repo.Delete(ctx, bob, category.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	bobs, err := repo.ListByOwner(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobs)

	got, err = repo.GetByID(ctx, alice, category.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Food", got.Name)
}

func TestCategoryRepository_UpdateReplacesAllFields(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)
	owner := createUser(t, db, "alice")

	category, err := repo.Create(ctx, owner, domain.CategoryInput{Name: "Food", Type: domain.TypeExpense, Icon: strPtr("fork")})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, owner, category.ID, domain.CategoryInput{Name: "Bonus", Type: domain.TypeIncome})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Bonus", updated.Name)
	assert.Equal(t, domain.TypeIncome, updated.Type)
	assert.Nil(t, updated.Icon)

	missing, err := repo.Update(ctx, owner, category.ID+100, domain.CategoryInput{Name: "X", Type: domain.TypeIncome})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryRepository_Delete(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)
	owner := createUser(t, db, "alice")

	category, err := repo.Create(ctx, owner, domain.CategoryInput{Name: "Food", Type: domain.TypeExpense})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, owner, category.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, owner, category.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
