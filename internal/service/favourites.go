package service

import (
	"context"
	"strings"
	"time"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/transport"
)

type FavouriteService struct {
	Repo FavouriteRepo
}

// Create saves a meal for a user; saving the same meal twice is ErrConflict.
func (s *FavouriteService) Create(ctx context.Context, req transport.CreateFavouriteRequest) (*models.Favourite, error) {
	if strings.TrimSpace(req.UserEmail) == "" {
		return nil, validation("userEmail required")
	}
	if strings.TrimSpace(req.MealID) == "" {
		return nil, validation("mealId required")
	}

	f := &models.Favourite{
		UserEmail: strings.TrimSpace(req.UserEmail),
		MealID:    req.MealID,
		MealName:  req.MealName,
		ChefName:  req.ChefName,
		Price:     req.Price.Float(),
		AddedDate: time.Now().UTC(),
	}
	if err := s.Repo.CreateFavourite(ctx, f); err != nil {
		return nil, classify(err, "create favourite")
	}
	return f, nil
}

func (s *FavouriteService) List(ctx context.Context, email string) ([]models.Favourite, error) {
	favs, err := s.Repo.ListFavourites(ctx, email)
	return favs, classify(err, "list favourites")
}

func (s *FavouriteService) Delete(ctx context.Context, id string) error {
	return classify(s.Repo.DeleteFavourite(ctx, id), "delete favourite")
}
