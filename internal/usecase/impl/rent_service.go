package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "zeneasy/internal/delivery/context"
	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// nearbyScanLimit caps how many filtered listings a radius search inspects.
const nearbyScanLimit = 2000

// maxBoxRadiusKm is a quarter of the Earth's circumference.
const maxBoxRadiusKm = 10000

type rentService struct {
	rentRepo repository.RentRepository
	linkRepo repository.OwnerLinkRepository
	qrCode   service.QRCodeService
	logger   *slog.Logger
}

// RentServiceParams holds dependencies for the rent service, injected by Fx.
type RentServiceParams struct {
	fx.In

	RentRepo repository.RentRepository
	LinkRepo repository.OwnerLinkRepository
	QRCode   service.QRCodeService
	Logger   *slog.Logger
}

// NewRentService is the constructor for rentService.
func NewRentService(params RentServiceParams) usecase.RentUsecase {
	return &rentService{
		rentRepo: params.RentRepo,
		linkRepo: params.LinkRepo,
		qrCode:   params.QRCode,
		logger:   params.Logger,
	}
}

func (srv *rentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetRent returns one listing.
func (srv *rentService) GetRent(ctx context.Context, id uuid.UUID) (*entity.RentListing, error) {
	rent, err := srv.rentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRentError(err, "failed to find rent listing")
	}

	return rent, nil
}

// ListRents filters listings. With a GeoQuery only located listings inside the
// radius are returned, nearest first.
func (srv *rentService) ListRents(ctx context.Context, query *usecase.RentQuery) (*usecase.RentList, error) {
	page := normalizePage(query.Page)

	if query.Near == nil {
		rents, total, err := srv.rentRepo.List(ctx, query.Filter, page.Offset, page.Limit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list rent listings")
		}

		results := make([]*usecase.RentResult, 0, len(rents))
		for _, rent := range rents {
			results = append(results, &usecase.RentResult{Rent: rent})
		}

		return &usecase.RentList{Rents: results, Total: total}, nil
	}

	if query.Near.RadiusKm <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("radiusKm must be positive")
	}

	filter := query.Filter
	filter.Within = searchBounds(query.Near)

	rents, _, err := srv.rentRepo.List(ctx, filter, 0, nearbyScanLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rent listings")
	}

	nearby := filterWithinRadius(rents, query.Near)
	total := int64(len(nearby))

	if page.Offset >= len(nearby) {
		return &usecase.RentList{Rents: []*usecase.RentResult{}, Total: total}, nil
	}

	end := min(page.Offset+page.Limit, len(nearby))

	return &usecase.RentList{Rents: nearby[page.Offset:end], Total: total}, nil
}

// searchBounds is the box enclosing the search circle. Radii too large for a
// box fall back to the whole globe.
func searchBounds(near *usecase.GeoQuery) *entity.GeoBounds {
	if near.RadiusKm >= maxBoxRadiusKm {
		return &entity.GeoBounds{MinLat: -90, MaxLat: 90, MinLng: -180, MaxLng: 180}
	}

	bound := geo.NewBoundAroundPoint(orb.Point{near.Longitude, near.Latitude}, near.RadiusKm*1000)

	return &entity.GeoBounds{
		MinLat: bound.Min.Lat(),
		MaxLat: bound.Max.Lat(),
		MinLng: bound.Min.Lon(),
		MaxLng: bound.Max.Lon(),
	}
}

// filterWithinRadius keeps located listings within the radius, nearest first.
func filterWithinRadius(rents []*entity.RentListing, near *usecase.GeoQuery) []*usecase.RentResult {
	origin := orb.Point{near.Longitude, near.Latitude}
	results := make([]*usecase.RentResult, 0, len(rents))

	for _, rent := range rents {
		if !rent.HasLocation() {
			continue
		}

		km := geo.Distance(origin, orb.Point{*rent.Longitude, *rent.Latitude}) / 1000
		if km > near.RadiusKm {
			continue
		}

		results = append(results, &usecase.RentResult{Rent: rent, DistanceKm: &km})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].DistanceKm < *results[j].DistanceKm
	})

	return results
}

// ListUserRents returns the owner's listings in the order they were linked.
func (srv *rentService) ListUserRents(ctx context.Context, userID uuid.UUID) ([]*entity.RentListing, error) {
	ids, err := srv.linkRepo.ChildIDs(ctx, userID, entity.OwnerLinkRent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load owner rent links")
	}

	if len(ids) == 0 {
		return []*entity.RentListing{}, nil
	}

	rents, err := srv.rentRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load owner rent listings")
	}

	return rents, nil
}

// UpdateStatus marks a listing Active or Booked. Only its owner or the admin may.
func (srv *rentService) UpdateStatus(ctx context.Context, actor usecase.Actor, id uuid.UUID, status entity.RentStatus) (*entity.RentListing, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("status must be Active or Booked")
	}

	rent, err := srv.GetRent(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanModify(rent.OwnerID) {
		return nil, domainerrors.ErrNotResourceOwner.WrapMessage("only the owner may change this listing")
	}

	if err := srv.rentRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, mapRentError(err, "failed to update rent status")
	}

	rent.Status = status

	return rent, nil
}

// DeleteRent removes a listing. The owner's rentPosts list is left untouched.
func (srv *rentService) DeleteRent(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	rent, err := srv.GetRent(ctx, id)
	if err != nil {
		return err
	}

	if !actor.CanModify(rent.OwnerID) {
		return domainerrors.ErrNotResourceOwner.WrapMessage("only the owner may delete this listing")
	}

	if err := srv.rentRepo.Delete(ctx, id); err != nil {
		return mapRentError(err, "failed to delete rent listing")
	}

	srv.log(ctx).Info("Rent listing deleted", slog.Any("rentID", id), slog.Bool("byAdmin", actor.IsAdmin))

	return nil
}

// RentQRCode renders the share code of an existing listing.
func (srv *rentService) RentQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetRent(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateRentQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render rent qr code")
	}

	return png, nil
}

func mapRentError(err error, msg string) error {
	if errors.Is(err, repository.ErrRentNotFound) {
		return domainerrors.ErrRentNotFound.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}
