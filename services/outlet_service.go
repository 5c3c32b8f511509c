// services/outlet_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NemesisID/PreviewOnly-Dash/entity"
	"github.com/NemesisID/PreviewOnly-Dash/pkg/maplink"
	"github.com/NemesisID/PreviewOnly-Dash/pkg/storage"
	"github.com/NemesisID/PreviewOnly-Dash/repository"
	"github.com/NemesisID/PreviewOnly-Dash/viewstate"
)

const outletImageFolder = "uploads/outlets"

// CoordinateResolver turns a pasted maps link into coordinates; *maplink.Resolver in production.
type CoordinateResolver interface {
	Coordinates(ctx context.Context, link string) (maplink.Coordinates, error)
}

type OutletService struct {
	Repo     *repository.OutletRepository
	Store    storage.Store
	Resolver CoordinateResolver
}

func NewOutletService(repo *repository.OutletRepository, store storage.Store, resolver CoordinateResolver) *OutletService {
	return &OutletService{Repo: repo, Store: store, Resolver: resolver}
}

// ----- DTO from Controller -----
type OutletInput struct {
	Name           string
	Type           string
	Address        string
	GoogleMapsLink string
}

func (in OutletInput) trimmed() OutletInput {
	return OutletInput{
		Name:           strings.TrimSpace(in.Name),
		Type:           strings.TrimSpace(in.Type),
		Address:        strings.TrimSpace(in.Address),
		GoogleMapsLink: strings.TrimSpace(in.GoogleMapsLink),
	}
}

func (s *OutletService) List(ctx context.Context, state viewstate.OutletListState) ([]entity.Outlet, error) {
	all, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return viewstate.FilterOutlets(all, state), nil
}

func (s *OutletService) Get(ctx context.Context, id uint) (*entity.Outlet, error) {
	o, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "outlet")
	}
	return o, nil
}

func (s *OutletService) Types(ctx context.Context) ([]string, error) {
	types, err := s.Repo.Types(ctx)
	if err != nil {
		return nil, err
	}
	return viewstate.Distinct(types), nil
}

func (s *OutletService) coordinates(ctx context.Context, link string) (maplink.Coordinates, error) {
	if link == "" {
		return maplink.Coordinates{}, fmt.Errorf("%w: google maps link is required", ErrMapLink)
	}
	c, err := s.Resolver.Coordinates(ctx, link)
	if errors.Is(err, maplink.ErrNoCoordinates) {
		return c, fmt.Errorf("%w. Please paste a Google Maps share link that includes coordinates", ErrMapLink)
	}
	return c, err
}

// ----- Create -----
func (s *OutletService) Create(ctx context.Context, in OutletInput, img *Upload) (*entity.Outlet, error) {
	if !img.Present() {
		return nil, invalid("image is required")
	}
	in = in.trimmed()
	if in.Name == "" {
		return nil, invalid("name is required")
	}
	coords, err := s.coordinates(ctx, in.GoogleMapsLink)
	if err != nil {
		return nil, err
	}

	path, err := saveUpload(ctx, s.Store, img, outletImageFolder)
	if err != nil {
		return nil, err
	}

	o := &entity.Outlet{
		Name:           in.Name,
		Type:           in.Type,
		Address:        in.Address,
		GoogleMapsLink: in.GoogleMapsLink,
		Latitude:       coords.Latitude,
		Longitude:      coords.Longitude,
		ImagePath:      path,
	}
	if err := s.Repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ----- Update -----
func (s *OutletService) Update(ctx context.Context, id uint, in OutletInput, img *Upload) (*entity.Outlet, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	in = in.trimmed()
	if in.Name == "" {
		return nil, invalid("name is required")
	}
	coords, err := s.coordinates(ctx, in.GoogleMapsLink)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"name":             in.Name,
		"type":             in.Type,
		"address":          in.Address,
		"google_maps_link": in.GoogleMapsLink,
		"latitude":         coords.Latitude,
		"longitude":        coords.Longitude,
	}
	if img.Present() {
		path, err := saveUpload(ctx, s.Store, img, outletImageFolder)
		if err != nil {
			return nil, err
		}
		fields["image_path"] = path
	}

	if err := s.Repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// ----- Delete -----
func (s *OutletService) Delete(ctx context.Context, id uint) error {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(gormNotFound, "outlet")
	}
	return nil
}
