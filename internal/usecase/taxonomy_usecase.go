package usecase

import (
	"context"
	"strings"
	"unicode"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// maxCategoryDepth ограничивает обход цепочки родителей при проверке циклов.
const maxCategoryDepth = 100

// TaxonomyUseCase управляет категориями и тегами продавца.
// Slug выводится из имени и уникален в пределах продавца (ограничение БД).
// Родительская категория обязана принадлежать тому же продавцу;
// циклы в дереве отклоняются при записи.
type TaxonomyUseCase struct {
	categoryRepo CategoryRepository
	tagRepo      TagRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewTaxonomyUC(
	categoryRepo CategoryRepository,
	tagRepo TagRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *TaxonomyUseCase {
	return &TaxonomyUseCase{
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// CreateCategory создаёт категорию с выведенным slug.
func (t *TaxonomyUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error) {
	const op = "TaxonomyUseCase.CreateCategory"

	var err error
	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	if req.ParentID != nil {
		if err = t.checkParent(ctx, req.SellerID, *req.ParentID, 0); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, t.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	category, err := t.categoryRepo.Create(ctx, domain.NewCategory(req.SellerID, req.Name, Slugify(req.Name), req.Description, req.ParentID))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// UpdateCategory изменяет имя (со сменой slug), описание и родителя категории.
// Смена родителя проходит проверку владения и отсутствия цикла.
func (t *TaxonomyUseCase) UpdateCategory(ctx context.Context, req *UpdateCategoryReq) (*domain.Category, error) {
	const op = "TaxonomyUseCase.UpdateCategory"

	var err error
	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	category, err := t.getOwnedCategory(ctx, req.SellerID, req.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.ParentID != nil {
		if *req.ParentID == category.ID {
			return nil, e.Wrap(op, e.ErrCategoryCycle)
		}

		if err = t.checkParent(ctx, req.SellerID, *req.ParentID, category.ID); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	category.Name = req.Name
	category.Slug = Slugify(req.Name)
	category.Description = req.Description
	category.ParentID = req.ParentID

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, t.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := t.categoryRepo.Update(ctx, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// ListCategories возвращает категории продавца.
func (t *TaxonomyUseCase) ListCategories(ctx context.Context, sellerID int64) ([]domain.Category, error) {
	const op = "TaxonomyUseCase.ListCategories"

	categories, err := t.categoryRepo.List(ctx, sellerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// DeleteCategory удаляет категорию. Связи с продуктами удаляются каскадом,
// дочерние категории становятся корневыми (на стороне БД).
func (t *TaxonomyUseCase) DeleteCategory(ctx context.Context, sellerID, categoryID int64) error {
	const op = "TaxonomyUseCase.DeleteCategory"

	var err error
	if _, err = t.getOwnedCategory(ctx, sellerID, categoryID); err != nil {
		return e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, t.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = t.categoryRepo.Delete(ctx, categoryID, sellerID); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// CreateTag создаёт тег со slug, выведенным из имени.
func (t *TaxonomyUseCase) CreateTag(ctx context.Context, req *CreateTagReq) (*domain.Tag, error) {
	const op = "TaxonomyUseCase.CreateTag"

	var err error
	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, t.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	tag, err := t.tagRepo.Create(ctx, domain.NewTag(req.SellerID, req.Name, Slugify(req.Name)))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return tag, nil
}

// ListTags возвращает теги продавца.
func (t *TaxonomyUseCase) ListTags(ctx context.Context, sellerID int64) ([]domain.Tag, error) {
	const op = "TaxonomyUseCase.ListTags"

	tags, err := t.tagRepo.List(ctx, sellerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return tags, nil
}

// DeleteTag удаляет тег; связи с продуктами удаляются каскадом.
func (t *TaxonomyUseCase) DeleteTag(ctx context.Context, sellerID, tagID int64) error {
	const op = "TaxonomyUseCase.DeleteTag"

	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, t.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = t.tagRepo.Delete(ctx, tagID, sellerID); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// getOwnedCategory возвращает категорию продавца по ID.
func (t *TaxonomyUseCase) getOwnedCategory(ctx context.Context, sellerID, categoryID int64) (*domain.Category, error) {
	category, err := t.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if category.SellerID != sellerID {
		return nil, e.ErrUnauthorized
	}

	return category, nil
}

// checkParent проверяет, что родитель существует, принадлежит продавцу
// и не замыкает цикл через categoryID (0 — проверка без исключаемого узла).
func (t *TaxonomyUseCase) checkParent(ctx context.Context, sellerID, parentID, categoryID int64) error {
	current := parentID
	for depth := 0; depth < maxCategoryDepth; depth++ {
		parent, err := t.categoryRepo.GetByID(ctx, current)
		if err != nil {
			return err
		}

		if parent.SellerID != sellerID {
			return e.ErrParentNotOwned
		}

		if parent.ID == categoryID {
			return e.ErrCategoryCycle
		}

		if parent.ParentID == nil {
			return nil
		}
		current = *parent.ParentID
	}

	return e.ErrCategoryCycle
}

// Slugify выводит slug из имени: латиница и цифры в нижнем регистре,
// остальные символы сворачиваются в одиночный дефис.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // подавляем ведущий дефис
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
