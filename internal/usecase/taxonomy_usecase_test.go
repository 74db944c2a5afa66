package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/pkg/e"
)

func newTaxonomyUC(categories *fakeCategoryRepo) *TaxonomyUseCase {
	return NewTaxonomyUC(categories, &fakeTagRepo{}, &fakePool{}, noopLogger{})
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"E-Books", "e-books"},
		{"  Online Courses  ", "online-courses"},
		{"Design & Templates", "design-templates"},
		{"2024 bundle!!!", "2024-bundle"},
		{"---", ""},
		{"Видео уроки", "видео-уроки"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCreateCategory_SlugFromName(t *testing.T) {
	categories := &fakeCategoryRepo{}
	uc := newTaxonomyUC(categories)

	category, err := uc.CreateCategory(context.Background(), &CreateCategoryReq{
		SellerID: 1,
		Name:     "Online Courses",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if category.Slug != "online-courses" {
		t.Errorf("expected slug online-courses, got %s", category.Slug)
	}
}

func TestCreateCategory_NameRequired(t *testing.T) {
	uc := newTaxonomyUC(&fakeCategoryRepo{})

	_, err := uc.CreateCategory(context.Background(), &CreateCategoryReq{SellerID: 1, Name: "  "})
	if !errors.Is(err, e.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestCreateCategory_ForeignParent(t *testing.T) {
	categories := &fakeCategoryRepo{categories: map[int64]*domain.Category{
		5: {ID: 5, SellerID: 2, Name: "Foreign"},
	}}
	uc := newTaxonomyUC(categories)

	parentID := int64(5)
	_, err := uc.CreateCategory(context.Background(), &CreateCategoryReq{
		SellerID: 1,
		Name:     "Child",
		ParentID: &parentID,
	})
	if !errors.Is(err, e.ErrParentNotOwned) {
		t.Fatalf("expected ErrParentNotOwned, got %v", err)
	}
}

func TestUpdateCategory_SelfParent(t *testing.T) {
	categories := &fakeCategoryRepo{categories: map[int64]*domain.Category{
		5: {ID: 5, SellerID: 1, Name: "Courses"},
	}}
	uc := newTaxonomyUC(categories)

	parentID := int64(5)
	_, err := uc.UpdateCategory(context.Background(), &UpdateCategoryReq{
		SellerID:   1,
		CategoryID: 5,
		Name:       "Courses",
		ParentID:   &parentID,
	})
	if !errors.Is(err, e.ErrCategoryCycle) {
		t.Fatalf("expected ErrCategoryCycle, got %v", err)
	}
}

func TestUpdateCategory_DeepCycle(t *testing.T) {
	// 5 -> 6 -> 7; перенос 5 под 7 замкнул бы цикл
	five, six := int64(5), int64(6)
	categories := &fakeCategoryRepo{categories: map[int64]*domain.Category{
		5: {ID: 5, SellerID: 1, Name: "Root"},
		6: {ID: 6, SellerID: 1, Name: "Mid", ParentID: &five},
		7: {ID: 7, SellerID: 1, Name: "Leaf", ParentID: &six},
	}}
	uc := newTaxonomyUC(categories)

	parentID := int64(7)
	_, err := uc.UpdateCategory(context.Background(), &UpdateCategoryReq{
		SellerID:   1,
		CategoryID: 5,
		Name:       "Root",
		ParentID:   &parentID,
	})
	if !errors.Is(err, e.ErrCategoryCycle) {
		t.Fatalf("expected ErrCategoryCycle, got %v", err)
	}
}

func TestUpdateCategory_ValidReparent(t *testing.T) {
	categories := &fakeCategoryRepo{categories: map[int64]*domain.Category{
		5: {ID: 5, SellerID: 1, Name: "Root"},
		6: {ID: 6, SellerID: 1, Name: "Standalone"},
	}}
	uc := newTaxonomyUC(categories)

	parentID := int64(5)
	updated, err := uc.UpdateCategory(context.Background(), &UpdateCategoryReq{
		SellerID:   1,
		CategoryID: 6,
		Name:       "Standalone",
		ParentID:   &parentID,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.ParentID == nil || *updated.ParentID != 5 {
		t.Errorf("expected parent 5, got %+v", updated.ParentID)
	}
}

func TestDeleteCategory_Foreign(t *testing.T) {
	categories := &fakeCategoryRepo{categories: map[int64]*domain.Category{
		5: {ID: 5, SellerID: 2, Name: "Foreign"},
	}}
	uc := newTaxonomyUC(categories)

	if err := uc.DeleteCategory(context.Background(), 1, 5); !errors.Is(err, e.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

type fakeCategoryRepo struct {
	categories map[int64]*domain.Category
	nextID     int64
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if f.categories == nil {
		f.categories = make(map[int64]*domain.Category)
	}
	f.nextID++
	stored := *category
	stored.ID = f.nextID
	f.categories[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}

	out := *c
	return &out, nil
}

func (f *fakeCategoryRepo) List(_ context.Context, sellerID int64) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range f.categories {
		if c.SellerID == sellerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if _, ok := f.categories[category.ID]; !ok {
		return nil, e.ErrCategoryNotFound
	}
	stored := *category
	f.categories[category.ID] = &stored

	out := stored
	return &out, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id, sellerID int64) error {
	c, ok := f.categories[id]
	if !ok || c.SellerID != sellerID {
		return e.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

type fakeTagRepo struct {
	tags   map[int64]*domain.Tag
	nextID int64
}

func (f *fakeTagRepo) Create(_ context.Context, tag *domain.Tag) (*domain.Tag, error) {
	if f.tags == nil {
		f.tags = make(map[int64]*domain.Tag)
	}
	f.nextID++
	stored := *tag
	stored.ID = f.nextID
	f.tags[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (f *fakeTagRepo) List(_ context.Context, sellerID int64) ([]domain.Tag, error) {
	var out []domain.Tag
	for _, tag := range f.tags {
		if tag.SellerID == sellerID {
			out = append(out, *tag)
		}
	}
	return out, nil
}

func (f *fakeTagRepo) Delete(_ context.Context, id, sellerID int64) error {
	tag, ok := f.tags[id]
	if !ok || tag.SellerID != sellerID {
		return e.ErrTagNotFound
	}
	delete(f.tags, id)
	return nil
}
