package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "waffer/internal/delivery/context"
	"waffer/internal/domain/entity"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/repository"
	"waffer/internal/domain/service"
	"waffer/internal/usecase"

	"github.com/pkg/errors"
)

var (
	arabicWeekdays = [...]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"}
	// month names as used in Tunisia
	arabicMonths = [...]string{"جانفي", "فيفري", "مارس", "أفريل", "ماي", "جوان", "جويلية", "أوت", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"}
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	offers repository.OfferRepository
	qrcode service.QRCodeService
	clock  func() time.Time
	logger *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(offers repository.OfferRepository, qrcode service.QRCodeService, logger *slog.Logger) usecase.OfferUsecase {
	return &offerService{
		offers: offers,
		qrcode: qrcode,
		clock:  time.Now,
		logger: logger,
	}
}

// GetOffer returns the detail sheet content of an offer.
func (srv *offerService) GetOffer(ctx context.Context, offerID string) (*usecase.OfferDetails, error) {
	offer, err := srv.findOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	return &usecase.OfferDetails{
		Offer:         *offer,
		DirectionsURL: offer.DirectionsURL(),
		PhoneURI:      offer.PhoneURI(),
		ExpiresOn:     formatExpiry(offer.EndDate),
		Expired:       !offer.ActiveAt(srv.clock()),
	}, nil
}

// ListCategories returns the category list; a missing list document yields an empty list.
func (srv *offerService) ListCategories(ctx context.Context) ([]usecase.CategoryView, error) {
	categories, err := srv.offers.ListCategories(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrCategoriesNotFound) {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Category document missing")

			return []usecase.CategoryView{}, nil
		}

		return nil, domainerrors.NewDocumentStoreError(err, "list categories")
	}

	views := make([]usecase.CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, usecase.CategoryView{Name: category.Name, Icon: category.IconHint()})
	}

	return views, nil
}

// OfferQR encodes the offer's directions link as a PNG QR code.
func (srv *offerService) OfferQR(ctx context.Context, offerID string) ([]byte, error) {
	offer, err := srv.findOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateOfferQR(offer.DirectionsURL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate offer QR code")
	}

	return png, nil
}

func (srv *offerService) findOffer(ctx context.Context, offerID string) (*entity.Offer, error) {
	offer, err := srv.offers.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, domainerrors.NewDocumentStoreError(err, "find offer")
	}

	return offer, nil
}

// formatExpiry renders a date like "الاثنين، 3 نوفمبر 2025"; a zero date renders as "—"
func formatExpiry(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	return fmt.Sprintf("%s، %d %s %d", arabicWeekdays[t.Weekday()], t.Day(), arabicMonths[t.Month()-1], t.Year())
}
