package usecase

import (
	"context"

	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
)

// AssignmentUseCase приводит связи продукта с категориями и тегами
// к желаемым наборам минимальным числом мутаций. Сверка выполняется
// best-effort: уже применённые операции при сбое не откатываются,
// результат отражает частичное выполнение.
type AssignmentUseCase struct {
	productRepo ProductRepository
	mappingRepo MappingRepository
	logger      logger.Logger
}

func NewAssignmentUC(productRepo ProductRepository, mappingRepo MappingRepository, logger logger.Logger) *AssignmentUseCase {
	return &AssignmentUseCase{
		productRepo: productRepo,
		mappingRepo: mappingRepo,
		logger:      logger,
	}
}

// Reconcile проверяет владение продуктом и сверяет оба вида связей.
// Идентификаторы, присутствующие и в текущем, и в желаемом наборе, не трогаются,
// поэтому повторный вызов с теми же наборами не выполняет ни одной мутации.
func (a *AssignmentUseCase) Reconcile(ctx context.Context, req *ReconcileReq) (*ReconcileResult, error) {
	const op = "AssignmentUseCase.Reconcile"

	product, err := a.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if product.SellerID != req.SellerID {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	result := &ReconcileResult{}
	a.reconcileKind(ctx, req.ProductID, domain.MappingCategory, req.CategoryIDs, result)
	a.reconcileKind(ctx, req.ProductID, domain.MappingTag, req.TagIDs, result)

	if !result.Clean() {
		a.logger.Warnf("%s: reconcile finished with %d failed op(s), product_id: %d", op, len(result.Failed), req.ProductID)
	}

	return result, nil
}

// reconcileKind сверяет один вид связи: вычисляет toAdd = desired - current
// и toRemove = current - desired, затем применяет операции по одной.
func (a *AssignmentUseCase) reconcileKind(
	ctx context.Context,
	productID int64,
	kind domain.MappingKind,
	desired []int64,
	result *ReconcileResult,
) {
	current, err := a.mappingRepo.FetchMappings(ctx, productID, kind)
	if err != nil {
		// Без текущего набора diff не вычислить; фиксируем неудачу всего вида
		result.Failed = append(result.Failed, FailedOp{
			Op:    ReconcileOp{Kind: kind, Action: ActionFetch},
			Error: err.Error(),
		})
		return
	}

	// Дубликаты в желаемом наборе сворачиваются до одного идентификатора
	desiredSet := make(map[int64]struct{}, len(desired))
	uniq := make([]int64, 0, len(desired))
	for _, id := range desired {
		if _, ok := desiredSet[id]; ok {
			continue
		}
		desiredSet[id] = struct{}{}
		uniq = append(uniq, id)
	}

	for _, id := range uniq {
		if _, ok := current[id]; ok {
			continue
		}

		mOp := ReconcileOp{Kind: kind, TargetID: id, Action: ActionAdd}
		if err := a.mappingRepo.AddMapping(ctx, productID, kind, id); err != nil {
			result.Failed = append(result.Failed, FailedOp{Op: mOp, Error: err.Error()})
			continue
		}
		result.Added = append(result.Added, mOp)
	}

	for id := range current {
		if _, ok := desiredSet[id]; ok {
			continue
		}

		mOp := ReconcileOp{Kind: kind, TargetID: id, Action: ActionRemove}
		if err := a.mappingRepo.RemoveMapping(ctx, productID, kind, id); err != nil {
			result.Failed = append(result.Failed, FailedOp{Op: mOp, Error: err.Error()})
			continue
		}
		result.Removed = append(result.Removed, mOp)
	}
}
