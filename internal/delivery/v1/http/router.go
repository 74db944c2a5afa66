package http

import (
	_ "github.com/DRSN-tech/seller-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/seller-backend/internal/usecase"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	refundUC usecase.RefundUC,
	disputeUC usecase.DisputeUC,
	assignmentUC usecase.AssignmentUC,
	productUC usecase.ProductUC,
	taxonomyUC usecase.TaxonomyUC,
	saleUC usecase.SaleUC,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(SellerAuth)

		registerProductRoutes(v1, NewProductHandler(productUC, assignmentUC, r.logger))
		registerTaxonomyRoutes(v1, NewTaxonomyHandler(taxonomyUC, r.logger))
		registerSaleRoutes(v1, NewSaleHandler(saleUC, r.logger))
		registerRefundRoutes(v1, NewRefundHandler(refundUC, r.logger))
		registerDisputeRoutes(v1, NewDisputeHandler(disputeUC, r.logger))
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.createProduct)
		pr.Get("/", prHandler.listProducts)
		pr.Get("/{productID}", prHandler.getProduct)
		pr.Put("/{productID}", prHandler.updateProduct)
		pr.Delete("/{productID}", prHandler.deleteProduct)
		pr.Put("/{productID}/assignments", prHandler.setAssignments)
	})
}

func registerTaxonomyRoutes(router chi.Router, txHandler *TaxonomyHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Post("/", txHandler.createCategory)
		cat.Get("/", txHandler.listCategories)
		cat.Put("/{categoryID}", txHandler.updateCategory)
		cat.Delete("/{categoryID}", txHandler.deleteCategory)
	})

	router.Route("/tags", func(tag chi.Router) {
		tag.Post("/", txHandler.createTag)
		tag.Get("/", txHandler.listTags)
		tag.Delete("/{tagID}", txHandler.deleteTag)
	})
}

func registerSaleRoutes(router chi.Router, saleHandler *SaleHandler) {
	router.Route("/sales", func(s chi.Router) {
		s.Get("/", saleHandler.listSales)
		s.Get("/{saleID}", saleHandler.getSale)
	})
}

func registerRefundRoutes(router chi.Router, rfHandler *RefundHandler) {
	router.Route("/refunds", func(rf chi.Router) {
		rf.Post("/", rfHandler.createRefund)
		rf.Get("/", rfHandler.listRefunds)
		rf.Get("/stats", rfHandler.refundStats)
		rf.Patch("/{refundID}/approve", rfHandler.approveRefund)
		rf.Patch("/{refundID}/reject", rfHandler.rejectRefund)
		rf.Patch("/{refundID}/notes", rfHandler.updateRefundNotes)
		rf.Delete("/{refundID}", rfHandler.deleteRefund)
	})
}

func registerDisputeRoutes(router chi.Router, dsHandler *DisputeHandler) {
	router.Route("/disputes", func(ds chi.Router) {
		ds.Post("/", dsHandler.createDispute)
		ds.Get("/", dsHandler.listDisputes)
	})
}
