package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/greenstem/retail-core/internal/clients/email"
	"github.com/greenstem/retail-core/internal/clients/pricing"
	"github.com/greenstem/retail-core/internal/clients/procurement"
	"github.com/greenstem/retail-core/internal/clients/product"
	"github.com/greenstem/retail-core/internal/clients/unit"
	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/observability"
	"github.com/greenstem/retail-core/internal/platform/apierr"
	"github.com/greenstem/retail-core/internal/platform/logger"
)

// ReconcilerService drives procurement status transitions. The middle
// transitions are thin pass-throughs; closing is the heavy one, turning the
// recorded unit candidates into real stock units after validating them
// against the order and the catalog.
type ReconcilerService interface {
	SetStatus(ctx context.Context, procurementID uint32, status domain.ProcurementStatus, actor uint32) (*domain.Procurement, error)
	CloseProcurement(ctx context.Context, procurementID uint32, actor uint32) (*domain.Procurement, error)
}

type reconcilerService struct {
	log          *logger.Logger
	procurements procurement.Client
	units        unit.Client
	products     product.Client
	prices       pricing.Client
	emails       email.Client
	metrics      *observability.Metrics
	stockID      uint32
	alertEmail   string
}

func NewReconcilerService(
	baseLog *logger.Logger,
	procurementClient procurement.Client,
	unitClient unit.Client,
	productClient product.Client,
	pricingClient pricing.Client,
	emailClient email.Client,
	metrics *observability.Metrics,
	stockID uint32,
	alertEmail string,
) ReconcilerService {
	return &reconcilerService{
		log:          baseLog.With("service", "ReconcilerService"),
		procurements: procurementClient,
		units:        unitClient,
		products:     productClient,
		prices:       pricingClient,
		emails:       emailClient,
		metrics:      metrics,
		stockID:      stockID,
		alertEmail:   alertEmail,
	}
}

func (s *reconcilerService) SetStatus(ctx context.Context, procurementID uint32, status domain.ProcurementStatus, actor uint32) (*domain.Procurement, error) {
	switch status {
	case domain.ProcurementStatusOrdered, domain.ProcurementStatusArrived, domain.ProcurementStatusProcessing:
		return s.procurements.SetStatus(ctx, procurementID, status, actor)
	case domain.ProcurementStatusClosed:
		return nil, apierr.BadRequest("procurement %d cannot be closed by a plain status update, use the close operation", procurementID)
	default:
		return nil, apierr.BadRequest("unknown procurement status %q", status)
	}
}

// CloseProcurement validates the procurement's unit candidates against the
// order, the catalog and current pricing, creates the stock units in one bulk
// call and moves the procurement to Closed. All validation happens before the
// first write so a rejected close leaves no trace.
func (s *reconcilerService) CloseProcurement(ctx context.Context, procurementID uint32, actor uint32) (*domain.Procurement, error) {
	proc, err := s.procurements.GetByID(ctx, procurementID)
	if err != nil {
		return nil, err
	}
	if proc.Status != domain.ProcurementStatusProcessing {
		return nil, apierr.BadRequest("procurement %d is %s, only a processing procurement can be closed", proc.ID, proc.Status)
	}

	if err := s.checkCandidateIDs(ctx, proc); err != nil {
		return nil, err
	}

	skus, prices, err := s.fetchCatalog(ctx, proc)
	if err != nil {
		return nil, err
	}

	creates, err := buildUnitCreates(proc, skus, prices, s.stockID, actor)
	if err != nil {
		return nil, err
	}

	created, err := s.units.CreateBulk(ctx, creates)
	if err != nil {
		return nil, err
	}
	if len(created) < len(creates) {
		// Some units were not created, the stock now disagrees with the
		// procurement. The close still goes through so the procurement does
		// not stay reopenable; an operator reconciles the gap by hand.
		s.metrics.PartialUnitCreates.Inc()
		s.alertPartialCreate(ctx, proc, creates, created)
	}

	return s.procurements.SetStatus(ctx, proc.ID, domain.ProcurementStatusClosed, actor)
}

// checkCandidateIDs rejects the close if any candidate id already names an
// existing unit. Candidate ids are minted client side when the delivery is
// recorded, so a collision means the same delivery was processed twice.
func (s *reconcilerService) checkCandidateIDs(ctx context.Context, proc *domain.Procurement) error {
	ids := make([]string, 0, len(proc.Candidates))
	for _, c := range proc.Candidates {
		ids = append(ids, c.UnitID)
	}
	if len(ids) == 0 {
		return nil
	}

	existing, err := s.units.GetBulk(ctx, ids)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return nil
	}

	taken := make([]string, 0, len(existing))
	for _, u := range existing {
		taken = append(taken, u.ID)
	}
	return apierr.BadRequest("procurement %d has unit candidates that already exist: %s", proc.ID, strings.Join(taken, ", "))
}

func (s *reconcilerService) fetchCatalog(ctx context.Context, proc *domain.Procurement) (map[uint32]domain.Sku, map[uint32]domain.Price, error) {
	skuIDs := make([]uint32, 0, len(proc.Items))
	seen := make(map[uint32]bool, len(proc.Items))
	for _, item := range proc.Items {
		if !seen[item.Sku] {
			seen[item.Sku] = true
			skuIDs = append(skuIDs, item.Sku)
		}
	}

	var (
		skuList   []domain.Sku
		priceList []domain.Price
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		skuList, err = s.products.GetSkuBulk(gctx, skuIDs)
		return err
	})
	g.Go(func() error {
		var err error
		priceList, err = s.prices.GetPriceBulk(gctx, skuIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	skus := make(map[uint32]domain.Sku, len(skuList))
	for _, sk := range skuList {
		skus[sk.Sku] = sk
	}
	prices := make(map[uint32]domain.Price, len(priceList))
	for _, p := range priceList {
		prices[p.Sku] = p
	}
	return skus, prices, nil
}

func buildUnitCreates(
	proc *domain.Procurement,
	skus map[uint32]domain.Sku,
	prices map[uint32]domain.Price,
	stockID uint32,
	actor uint32,
) ([]domain.UnitCreateRequest, error) {
	candidatesBySku := make(map[uint32][]domain.UnitCandidate, len(proc.Items))
	for _, c := range proc.Candidates {
		candidatesBySku[c.Sku] = append(candidatesBySku[c.Sku], c)
	}

	creates := make([]domain.UnitCreateRequest, 0, len(proc.Candidates))
	for _, item := range proc.Items {
		sk, ok := skus[item.Sku]
		if !ok {
			return nil, apierr.BadRequest("procurement %d orders SKU %d, which is not in the catalog", proc.ID, item.Sku)
		}
		price, ok := prices[item.Sku]
		if !ok {
			return nil, apierr.BadRequest("SKU %d (%s) has no retail price, set one before closing procurement %d", item.Sku, sk.DisplayName, proc.ID)
		}

		candidates := candidatesBySku[item.Sku]

		var received uint32
		for _, c := range candidates {
			if sk.Perishable && c.BestBefore == "" {
				return nil, apierr.BadRequest("SKU %d (%s) is perishable but candidate %s has no best before date", item.Sku, sk.DisplayName, c.UnitID)
			}
			received += c.ReceivedPieces()
		}
		if received != item.OrderedAmount {
			return nil, apierr.BadRequest("procurement %d ordered %d of SKU %d but %d were received", proc.ID, item.OrderedAmount, item.Sku, received)
		}

		for _, c := range candidates {
			creates = append(creates, domain.UnitCreateRequest{
				UnitID:                 c.UnitID,
				ProductID:              sk.ProductID,
				Sku:                    item.Sku,
				BestBefore:             c.BestBefore,
				StockID:                stockID,
				ProcurementID:          proc.ID,
				Opened:                 c.Opened,
				Piece:                  c.Piece,
				ProductUnit:            sk.Unit,
				SkuDivisible:           sk.CanDivide,
				SkuDivisibleAmount:     sk.DivisibleAmount,
				SkuNetPrice:            price.PriceNetRetail,
				SkuVat:                 price.Vat,
				SkuGrossPrice:          price.PriceGrossRetail,
				ProcurementNetPriceSku: item.ExpectedNetPrice,
				CreatedBy:              actor,
			})
		}
	}
	return creates, nil
}

func (s *reconcilerService) alertPartialCreate(ctx context.Context, proc *domain.Procurement, creates []domain.UnitCreateRequest, created []string) {
	createdSet := make(map[string]bool, len(created))
	for _, id := range created {
		createdSet[id] = true
	}
	missing := make([]string, 0, len(creates)-len(created))
	for _, c := range creates {
		if !createdSet[c.UnitID] {
			missing = append(missing, c.UnitID)
		}
	}

	s.log.Error("bulk unit create was partial",
		"procurement_id", proc.ID,
		"requested", len(creates),
		"created", len(created),
		"missing_unit_ids", strings.Join(missing, ", "),
	)

	if s.alertEmail == "" {
		s.log.Warn("no alert email address configured, skipping partial create alert",
			"procurement_id", proc.ID,
		)
		return
	}

	subject := fmt.Sprintf("Procurement %d closed with missing stock units", proc.ID)
	body := fmt.Sprintf(
		"Closing procurement %d (reference %s) requested %d stock units but only %d were created.\n\nMissing unit ids:\n%s\n\nThe procurement was still closed. Please reconcile the stock by hand.",
		proc.ID, proc.Reference, len(creates), len(created), strings.Join(missing, "\n"),
	)
	if err := s.emails.Send(ctx, s.alertEmail, subject, body); err != nil {
		s.metrics.AlertEmailFailures.Inc()
		s.log.Error("failed to send partial create alert email",
			"procurement_id", proc.ID,
			"error", err.Error(),
		)
	}
}
