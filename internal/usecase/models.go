package usecase

import (
	"time"

	"github.com/DRSN-tech/seller-backend/internal/domain"
)

// REFUND USECASE

// CreateRefundReq — запрос на создание заявки на возврат по продаже.
type CreateRefundReq struct {
	SellerID int64
	SaleID   int64
	Amount   int64 // в копейках
	Reason   string
}

// RefundDecisionReq — запрос на одобрение или отклонение заявки.
type RefundDecisionReq struct {
	SellerID int64
	RefundID int64
	Notes    *string
}

type UpdateRefundNotesReq struct {
	SellerID int64
	RefundID int64
	Notes    string
}

type ListRefundsReq struct {
	SellerID   int64
	SaleID     *int64
	CustomerID *int64
}

// RefundStats — агрегированная статистика по заявкам продавца.
// TotalAmount — сумма только одобренных возвратов, в копейках.
type RefundStats struct {
	TotalRefunds    int
	ApprovedRefunds int
	RejectedRefunds int
	PendingRefunds  int
	TotalAmount     int64
}

// DISPUTE USECASE

type CreateDisputeReq struct {
	SellerID    int64
	SaleID      int64
	CustomerID  int64
	Reason      string
	Description *string
}

// ASSIGNMENT USECASE

// ReconcileReq — желаемые наборы категорий и тегов продукта.
type ReconcileReq struct {
	SellerID    int64
	ProductID   int64
	CategoryIDs []int64
	TagIDs      []int64
}

// MappingAction — вид операции над связью при сверке.
type MappingAction string

const (
	ActionAdd    MappingAction = "add"
	ActionRemove MappingAction = "remove"
	ActionFetch  MappingAction = "fetch"
)

// ReconcileOp описывает одну операцию над связью продукта.
type ReconcileOp struct {
	Kind     domain.MappingKind `json:"kind"`
	TargetID int64              `json:"target_id"`
	Action   MappingAction      `json:"action"`
}

// FailedOp — операция, завершившаяся ошибкой; уже применённые операции не откатываются.
type FailedOp struct {
	Op    ReconcileOp `json:"op"`
	Error string      `json:"error"`
}

// ReconcileResult отражает частичное выполнение сверки: что добавлено,
// что удалено и какие операции не удались.
type ReconcileResult struct {
	Added   []ReconcileOp `json:"added"`
	Removed []ReconcileOp `json:"removed"`
	Failed  []FailedOp    `json:"failed"`
}

// Clean сообщает, выполнена ли сверка полностью.
func (r *ReconcileResult) Clean() bool {
	return len(r.Failed) == 0
}

// PRODUCT USECASE

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

type CreateProductReq struct {
	SellerID    int64
	Name        string
	Description string
	Price       int64 // в копейках
	Status      domain.ProductStatus
	Image       *ProductImage
}

type UpdateProductReq struct {
	SellerID    int64
	ProductID   int64
	Name        string
	Description string
	Price       int64
	Status      domain.ProductStatus
}

// TAXONOMY USECASE

type CreateCategoryReq struct {
	SellerID    int64
	Name        string
	Description string
	ParentID    *int64
}

type UpdateCategoryReq struct {
	SellerID    int64
	CategoryID  int64
	Name        string
	Description string
	ParentID    *int64
}

type CreateTagReq struct {
	SellerID int64
	Name     string
}

// INFRASTRUCTURE

// UploadImageReq — запрос на загрузку изображения продукта в S3.
type UploadImageReq struct {
	ProductName string
	Image       ProductImage
}

type WriteRawMessageReq struct {
	SaleID  int64
	Payload []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	EventRefundApproved OutboxEventType = "refund.approved"
	EventRefundRejected OutboxEventType = "refund.rejected"
	EventDisputeOpened  OutboxEventType = "dispute.opened"
)

// OutboxEvent — запись таблицы outbox_events; публикуется в Kafka фоновым воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   OutboxEventType
	SaleID      int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// RefundEventPayload — JSON-тело события жизненного цикла возврата.
type RefundEventPayload struct {
	RefundID   int64  `json:"refund_id"`
	SaleID     int64  `json:"sale_id"`
	SellerID   int64  `json:"seller_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

// DisputeEventPayload — JSON-тело события открытия спора.
type DisputeEventPayload struct {
	DisputeID  int64  `json:"dispute_id"`
	SaleID     int64  `json:"sale_id"`
	CustomerID int64  `json:"customer_id"`
	SellerID   int64  `json:"seller_id"`
	Reason     string `json:"reason"`
	OccurredAt string `json:"occurred_at"`
}

// MAPPERS

func NewWriteRawMessageReq(saleID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		SaleID:  saleID,
		Payload: payload,
	}
}

func NewUploadImageReq(productName string, image ProductImage) *UploadImageReq {
	return &UploadImageReq{
		ProductName: productName,
		Image:       image,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, saleID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		SaleID:    saleID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}
