package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func newAssignmentUC(products *fakeProductRepo, mappings *fakeMappingRepo) *AssignmentUseCase {
	return NewAssignmentUC(products, mappings, noopLogger{})
}

func ownedProduct(id, sellerID int64) *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*domain.Product{
		id: {ID: id, SellerID: sellerID},
	}}
}

func TestReconcile_MinimalDiff(t *testing.T) {
	mappings := newFakeMappingRepo()
	mappings.seed(1, domain.MappingCategory, 101, 102, 103)
	uc := newAssignmentUC(ownedProduct(1, 1), mappings)

	result, err := uc.Reconcile(context.Background(), &ReconcileReq{
		SellerID:    1,
		ProductID:   1,
		CategoryIDs: []int64{102, 103, 104},
	})
	require.NoError(t, err)
	require.True(t, result.Clean())

	require.Equal(t, []ReconcileOp{
		{Kind: domain.MappingCategory, TargetID: 104, Action: ActionAdd},
	}, result.Added)
	require.Equal(t, []ReconcileOp{
		{Kind: domain.MappingCategory, TargetID: 101, Action: ActionRemove},
	}, result.Removed)

	require.ElementsMatch(t, []int64{102, 103, 104}, mappings.ids(1, domain.MappingCategory))
}

func TestReconcile_Idempotent(t *testing.T) {
	mappings := newFakeMappingRepo()
	uc := newAssignmentUC(ownedProduct(1, 1), mappings)

	req := &ReconcileReq{
		SellerID:    1,
		ProductID:   1,
		CategoryIDs: []int64{101, 102},
		TagIDs:      []int64{201},
	}

	first, err := uc.Reconcile(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, first.Added, 3)

	second, err := uc.Reconcile(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, second.Added)
	require.Empty(t, second.Removed)
	require.True(t, second.Clean())
}

func TestReconcile_DuplicateDesiredIDs(t *testing.T) {
	mappings := newFakeMappingRepo()
	uc := newAssignmentUC(ownedProduct(1, 1), mappings)

	result, err := uc.Reconcile(context.Background(), &ReconcileReq{
		SellerID:    1,
		ProductID:   1,
		CategoryIDs: []int64{5, 5, 5},
	})
	require.NoError(t, err)
	require.True(t, result.Clean())

	// Повторы сворачиваются: одна операция и одна запись в отчёте
	require.Equal(t, []ReconcileOp{
		{Kind: domain.MappingCategory, TargetID: 5, Action: ActionAdd},
	}, result.Added)
	require.Equal(t, 1, mappings.addCalls)
	require.ElementsMatch(t, []int64{5}, mappings.ids(1, domain.MappingCategory))
}

func TestReconcile_BothKindsIndependent(t *testing.T) {
	mappings := newFakeMappingRepo()
	mappings.seed(1, domain.MappingCategory, 101)
	mappings.seed(1, domain.MappingTag, 201, 202)
	uc := newAssignmentUC(ownedProduct(1, 1), mappings)

	result, err := uc.Reconcile(context.Background(), &ReconcileReq{
		SellerID:    1,
		ProductID:   1,
		CategoryIDs: []int64{101, 105},
		TagIDs:      []int64{202},
	})
	require.NoError(t, err)
	require.True(t, result.Clean())

	require.Equal(t, []ReconcileOp{
		{Kind: domain.MappingCategory, TargetID: 105, Action: ActionAdd},
	}, result.Added)
	require.Equal(t, []ReconcileOp{
		{Kind: domain.MappingTag, TargetID: 201, Action: ActionRemove},
	}, result.Removed)
}

func TestReconcile_EmptyDesiredClearsAll(t *testing.T) {
	mappings := newFakeMappingRepo()
	mappings.seed(1, domain.MappingTag, 201, 202, 203)
	uc := newAssignmentUC(ownedProduct(1, 1), mappings)

	result, err := uc.Reconcile(context.Background(), &ReconcileReq{SellerID: 1, ProductID: 1})
	require.NoError(t, err)
	require.Empty(t, result.Added)
	require.Len(t, result.Removed, 3)
	require.Empty(t, mappings.ids(1, domain.MappingTag))
}

func TestReconcile_ForeignProduct(t *testing.T) {
	uc := newAssignmentUC(ownedProduct(1, 2), newFakeMappingRepo())

	_, err := uc.Reconcile(context.Background(), &ReconcileReq{SellerID: 1, ProductID: 1})
	require.ErrorIs(t, err, e.ErrUnauthorized)
}

func TestReconcile_ProductNotFound(t *testing.T) {
	uc := newAssignmentUC(&fakeProductRepo{}, newFakeMappingRepo())

	_, err := uc.Reconcile(context.Background(), &ReconcileReq{SellerID: 1, ProductID: 99})
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestReconcile_PartialFailure(t *testing.T) {
	mappings := newFakeMappingRepo()
	mappings.seed(1, domain.MappingCategory, 101)
	mappings.addErrs = map[int64]error{103: errors.New("category 103 is gone")}
	uc := newAssignmentUC(ownedProduct(1, 1), mappings)

	result, err := uc.Reconcile(context.Background(), &ReconcileReq{
		SellerID:    1,
		ProductID:   1,
		CategoryIDs: []int64{101, 102, 103},
	})
	require.NoError(t, err, "partial failure is reported in the result, not as an error")
	require.False(t, result.Clean())

	// Успешная операция применена несмотря на сбой соседней
	require.Equal(t, []ReconcileOp{
		{Kind: domain.MappingCategory, TargetID: 102, Action: ActionAdd},
	}, result.Added)

	require.Len(t, result.Failed, 1)
	require.Equal(t, ReconcileOp{Kind: domain.MappingCategory, TargetID: 103, Action: ActionAdd}, result.Failed[0].Op)
	require.Contains(t, result.Failed[0].Error, "category 103 is gone")

	require.ElementsMatch(t, []int64{101, 102}, mappings.ids(1, domain.MappingCategory))
}

func TestReconcile_FetchFailureSkipsKind(t *testing.T) {
	mappings := newFakeMappingRepo()
	mappings.fetchErr = map[domain.MappingKind]error{domain.MappingCategory: errors.New("db down")}
	uc := newAssignmentUC(ownedProduct(1, 1), mappings)

	result, err := uc.Reconcile(context.Background(), &ReconcileReq{
		SellerID:    1,
		ProductID:   1,
		CategoryIDs: []int64{101},
		TagIDs:      []int64{201},
	})
	require.NoError(t, err)

	// Категории не сверены, теги сверены независимо
	require.Len(t, result.Failed, 1)
	require.Equal(t, ActionFetch, result.Failed[0].Op.Action)
	require.Equal(t, []ReconcileOp{
		{Kind: domain.MappingTag, TargetID: 201, Action: ActionAdd},
	}, result.Added)
}

// FAKES

type fakeProductRepo struct {
	products map[int64]*domain.Product
}

func (f *fakeProductRepo) Create(context.Context, *domain.Product) (*domain.Product, error) {
	panic("not implemented")
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	out := *p
	return &out, nil
}

func (f *fakeProductRepo) List(context.Context, int64) ([]domain.Product, error) {
	panic("not implemented")
}

func (f *fakeProductRepo) Update(context.Context, *domain.Product) (*domain.Product, error) {
	panic("not implemented")
}

func (f *fakeProductRepo) Delete(context.Context, int64, int64) error {
	panic("not implemented")
}

type fakeMappingRepo struct {
	sets      map[string]map[int64]struct{}
	addErrs   map[int64]error
	removeErr map[int64]error
	fetchErr  map[domain.MappingKind]error
	addCalls  int
}

func newFakeMappingRepo() *fakeMappingRepo {
	return &fakeMappingRepo{sets: make(map[string]map[int64]struct{})}
}

func (f *fakeMappingRepo) key(productID int64, kind domain.MappingKind) string {
	return fmt.Sprintf("%d/%s", productID, kind)
}

func (f *fakeMappingRepo) seed(productID int64, kind domain.MappingKind, ids ...int64) {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	f.sets[f.key(productID, kind)] = set
}

func (f *fakeMappingRepo) ids(productID int64, kind domain.MappingKind) []int64 {
	out := make([]int64, 0)
	for id := range f.sets[f.key(productID, kind)] {
		out = append(out, id)
	}
	return out
}

func (f *fakeMappingRepo) FetchMappings(_ context.Context, productID int64, kind domain.MappingKind) (map[int64]struct{}, error) {
	if err := f.fetchErr[kind]; err != nil {
		return nil, err
	}

	out := make(map[int64]struct{})
	for id := range f.sets[f.key(productID, kind)] {
		out[id] = struct{}{}
	}
	return out, nil
}

func (f *fakeMappingRepo) AddMapping(_ context.Context, productID int64, kind domain.MappingKind, targetID int64) error {
	f.addCalls++
	if err := f.addErrs[targetID]; err != nil {
		return err
	}

	k := f.key(productID, kind)
	if f.sets[k] == nil {
		f.sets[k] = make(map[int64]struct{})
	}
	f.sets[k][targetID] = struct{}{}
	return nil
}

func (f *fakeMappingRepo) RemoveMapping(_ context.Context, productID int64, kind domain.MappingKind, targetID int64) error {
	if err := f.removeErr[targetID]; err != nil {
		return err
	}

	delete(f.sets[f.key(productID, kind)], targetID)
	return nil
}
