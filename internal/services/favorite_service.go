package services

import (
	"context"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
	"strings"
)

// FavoriteService manages saved places and routes between them.
type FavoriteService struct {
	repo   ports.FavoriteRepository
	routes *RouteService
}

func NewFavoriteService(repo ports.FavoriteRepository, routes *RouteService) *FavoriteService {
	return &FavoriteService{repo: repo, routes: routes}
}

func (s *FavoriteService) Add(ctx context.Context, name, location string) (domain.Favorite, error) {
	fav := domain.Favorite{Name: strings.TrimSpace(name), Location: strings.TrimSpace(location)}
	if fav.Name == "" || fav.Location == "" {
		return domain.Favorite{}, domain.Errorf(domain.KindInvalidInput, "favorite name and location must be non-empty")
	}
	if err := s.repo.Add(ctx, fav); err != nil {
		return domain.Favorite{}, err
	}
	return fav, nil
}

func (s *FavoriteService) List(ctx context.Context) ([]domain.Favorite, error) {
	return s.repo.List(ctx)
}

// Remove deletes by 0-based index.
func (s *FavoriteService) Remove(ctx context.Context, index int) (domain.Favorite, error) {
	return s.repo.Remove(ctx, index)
}

// Get returns the favorite at index.
func (s *FavoriteService) Get(ctx context.Context, index int) (domain.Favorite, error) {
	favs, err := s.repo.List(ctx)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("get favorite: %w", err)
	}
	if index < 0 || index >= len(favs) {
		return domain.Favorite{}, domain.Errorf(domain.KindInvalidInput, "favorite index %d out of range (have %d)", index, len(favs))
	}
	return favs[index], nil
}

// RouteBetween routes from one saved location to another.
func (s *FavoriteService) RouteBetween(ctx context.Context, startIndex, endIndex int, vehicle domain.Vehicle) (domain.RouteResult, error) {
	start, err := s.Get(ctx, startIndex)
	if err != nil {
		return domain.RouteResult{}, err
	}
	end, err := s.Get(ctx, endIndex)
	if err != nil {
		return domain.RouteResult{}, err
	}
	return s.routes.ComputeRoute(ctx, start.Location, end.Location, vehicle)
}

// RouteFrom routes from a saved location to free-text destination.
func (s *FavoriteService) RouteFrom(ctx context.Context, startIndex int, destination string, vehicle domain.Vehicle) (domain.RouteResult, error) {
	start, err := s.Get(ctx, startIndex)
	if err != nil {
		return domain.RouteResult{}, err
	}
	return s.routes.ComputeRoute(ctx, start.Location, destination, vehicle)
}
