package mapview

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"waffer/config"
	"waffer/internal/domain/entity"
	"waffer/internal/domain/service"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "waffer/internal/mapview"

// FollowUp is the camera action that closes a reconciliation
type FollowUp int

const (
	// FollowUpNone leaves the camera alone
	FollowUpNone FollowUp = iota
	// FollowUpFitAll fits the camera to every reconciled offer
	FollowUpFitAll
	// FollowUpFitVisible focuses a single visible offer or fits several
	FollowUpFitVisible
)

// ReconcileResult reports what one reconciliation did
type ReconcileResult struct {
	Seq      uint64
	Stale    bool     // superseded before visibility was applied
	Created  []string // markers created by this run
	Failed   []string // offers whose icon could not be built
	Visible  []string // identities shown after the run
	Clusters int
}

// ReconcilerSettings configures icon building
type ReconcilerSettings struct {
	FetchConcurrency  int
	IconFailurePolicy string
}

// Reconciler brings the marker pool, visibility and clusters in line with an offer list.
// Runs are serialised; each is tagged with a sequence number so a run that
// was overtaken while building icons does not apply its visibility.
type Reconciler struct {
	mu         sync.Mutex
	seq        atomic.Uint64
	pool       *MarkerPool
	clusters   *ClusterManager
	viewport   *Viewport
	icons      *IconCache
	fetcher    service.ImageFetcher
	compositor service.IconCompositor
	settings   ReconcilerSettings
	onClick    func(offerID string)
	tracer     trace.Tracer
	logger     *slog.Logger
}

// NewReconciler wires a reconciler; onClick is bound to every created marker
func NewReconciler(
	pool *MarkerPool,
	clusters *ClusterManager,
	viewport *Viewport,
	icons *IconCache,
	fetcher service.ImageFetcher,
	compositor service.IconCompositor,
	settings ReconcilerSettings,
	onClick func(offerID string),
	logger *slog.Logger,
) *Reconciler {
	if settings.FetchConcurrency <= 0 {
		settings.FetchConcurrency = 1
	}

	return &Reconciler{
		pool:       pool,
		clusters:   clusters,
		viewport:   viewport,
		icons:      icons,
		fetcher:    fetcher,
		compositor: compositor,
		settings:   settings,
		onClick:    onClick,
		tracer:     otel.Tracer(tracerName),
		logger:     logger,
	}
}

// Target is the offer list and filter a reconciliation converges to
type Target struct {
	Offers []entity.Offer
	Filter Filter
}

// Reconcile runs the five steps for offers under filter:
// build missing markers, decide the visible set, apply visibility,
// recluster, then run the camera follow-up.
func (r *Reconciler) Reconcile(ctx context.Context, offers []entity.Offer, filter Filter, followUp FollowUp) (*ReconcileResult, error) {
	return r.ReconcileLatest(ctx, func() Target {
		return Target{Offers: offers, Filter: filter}
	}, followUp)
}

// ReconcileLatest is Reconcile for callers whose state may change while runs
// queue up: latest is read only once this run holds the reconciler, so the run
// that survives the sequence check always applies the newest state.
func (r *Reconciler) ReconcileLatest(ctx context.Context, latest func() Target, followUp FollowUp) (*ReconcileResult, error) {
	seq := r.seq.Add(1)

	r.mu.Lock()
	defer r.mu.Unlock()

	target := latest()
	offers, filter := target.Offers, target.Filter

	ctx, span := r.tracer.Start(ctx, "mapview.Reconcile", trace.WithAttributes(
		attribute.Int64("reconcile.seq", int64(seq)),
		attribute.Int("reconcile.offers", len(offers)),
		attribute.String("reconcile.category", filter.Category),
		attribute.Bool("reconcile.saved_only", filter.SavedOnly),
	))
	defer span.End()

	result := &ReconcileResult{Seq: seq}

	created, failed := r.materialize(ctx, offers)
	result.Created = created
	result.Failed = failed

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())

		return nil, errors.Wrap(err, "reconcile aborted while building markers")
	}

	if r.seq.Load() != seq {
		result.Stale = true
		span.SetAttributes(attribute.Bool("reconcile.stale", true))
		r.logger.Debug("Reconciliation superseded, skipping visibility", slog.Uint64("seq", seq))

		return result, nil
	}

	plan := PlanVisibility(offers, filter, r.pool.IDs())
	handles := r.applyVisibility(plan)
	clusters := r.clusters.Recompute(handles)

	if r.followUp(followUp, offers, plan.Visible) {
		// the zoom changed, so membership must be derived again
		clusters = r.clusters.Recompute(handles)
	}

	result.Visible = plan.Show
	result.Clusters = len(clusters)
	span.SetAttributes(
		attribute.Int("reconcile.created", len(created)),
		attribute.Int("reconcile.failed", len(failed)),
		attribute.Int("reconcile.visible", len(plan.Show)),
		attribute.Int("reconcile.clusters", len(clusters)),
	)

	r.logger.Debug("Reconciliation applied",
		slog.Uint64("seq", seq),
		slog.Int("offers", len(offers)),
		slog.Int("created", len(created)),
		slog.Int("failed", len(failed)),
		slog.Int("visible", len(plan.Show)),
		slog.Int("clusters", len(clusters)),
	)

	return result, nil
}

// Recluster recomputes clusters for the markers currently shown, e.g. after a camera move
func (r *Reconciler) Recluster() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	handles := make([]service.Marker, 0, r.pool.Len())
	for _, entry := range r.pool.All() {
		if entry.Handle.Visible() {
			handles = append(handles, entry.Handle)
		}
	}

	return len(r.clusters.Recompute(handles))
}

// materialize builds icons and markers for every offer concurrently.
// A failure only affects its own offer.
func (r *Reconciler) materialize(ctx context.Context, offers []entity.Offer) (created, failed []string) {
	var (
		mu    sync.Mutex
		group errgroup.Group
	)
	group.SetLimit(r.settings.FetchConcurrency)

	for idx := range offers {
		offer := offers[idx]
		group.Go(func() error {
			wasCreated, iconFailed := r.materializeOne(ctx, offer)

			mu.Lock()
			defer mu.Unlock()
			if wasCreated {
				created = append(created, offer.ID)
			}
			if iconFailed {
				failed = append(failed, offer.ID)
			}

			return nil
		})
	}
	_ = group.Wait()

	slices.Sort(created)
	slices.Sort(failed)

	return created, failed
}

func (r *Reconciler) materializeOne(ctx context.Context, offer entity.Offer) (created, iconFailed bool) {
	handle, exists := r.pool.Handle(offer.ID)

	entry, cached := r.icons.lookup(offer.ID, offer.Thumbnail)
	if exists && cached {
		return false, !entry.ok
	}

	if !cached {
		entry = r.buildIcon(ctx, offer)
		r.icons.store(offer.ID, entry)
	}

	if !entry.ok && r.settings.IconFailurePolicy != config.IconFailureFallback {
		return false, true
	}

	if exists {
		handle.SetIcon(entry.icon)

		return false, !entry.ok
	}

	offerID := offer.ID
	created = r.pool.Ensure(offerID, offer.Position, entry.icon, func() {
		if r.onClick != nil {
			r.onClick(offerID)
		}
	})

	return created, !entry.ok
}

func (r *Reconciler) buildIcon(ctx context.Context, offer entity.Offer) iconEntry {
	entry := iconEntry{thumbnail: offer.Thumbnail}

	dataURI, err := r.fetcher.FetchAsEmbeddable(ctx, offer.Thumbnail)
	if err != nil {
		r.logger.Warn("Failed to fetch offer thumbnail",
			slog.String("offer_id", offer.ID),
			slog.String("thumbnail", offer.Thumbnail),
			slog.Any("error", err),
		)
		entry.icon = r.compositor.Compose("", offer.ProdName)

		return entry
	}

	entry.icon = r.compositor.Compose(dataURI, offer.ProdName)
	entry.ok = !entry.icon.Degraded
	if !entry.ok {
		r.logger.Warn("Offer thumbnail is not a decodable image",
			slog.String("offer_id", offer.ID),
			slog.String("thumbnail", offer.Thumbnail),
		)
	}

	return entry
}

func (r *Reconciler) applyVisibility(plan VisibilityPlan) []service.Marker {
	for _, id := range plan.Hide {
		r.pool.SetVisible(id, false)
	}

	handles := make([]service.Marker, 0, len(plan.Show))
	for _, id := range plan.Show {
		r.pool.SetVisible(id, true)
		if handle, ok := r.pool.Handle(id); ok {
			handles = append(handles, handle)
		}
	}

	return handles
}

func (r *Reconciler) followUp(followUp FollowUp, offers, visible []entity.Offer) bool {
	switch followUp {
	case FollowUpFitAll:
		return r.viewport.FitBounds(offers)
	case FollowUpFitVisible:
		if len(visible) == 1 {
			r.viewport.FocusOn(visible[0])

			return true
		}

		return r.viewport.FitBounds(visible)
	default:
		return false
	}
}
