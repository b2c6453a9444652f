package service

import (
	"context"
	"strings"
	"time"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/transport"
)

const maxRating = 5

type ReviewService struct {
	Repo ReviewRepo
}

func (s *ReviewService) Create(ctx context.Context, req transport.CreateReviewRequest) (*models.Review, error) {
	if strings.TrimSpace(req.MealID) == "" {
		return nil, validation("mealId required")
	}
	if strings.TrimSpace(req.UserEmail) == "" {
		return nil, validation("userEmail required")
	}
	if err := checkRating(req.Ratings); err != nil {
		return nil, err
	}

	rv := &models.Review{
		MealID:        req.MealID,
		UserEmail:     strings.TrimSpace(req.UserEmail),
		ReviewerName:  req.ReviewerName,
		ReviewerImage: req.ReviewerImage,
		Review:        req.Review,
		Ratings:       req.Ratings.Float(),
		Date:          time.Now().UTC(),
	}
	if err := s.Repo.CreateReview(ctx, rv); err != nil {
		return nil, classify(err, "create review")
	}
	return rv, nil
}

// ListForMeal returns the reviews of one meal; an empty id lists them all.
func (s *ReviewService) ListForMeal(ctx context.Context, mealID string) ([]models.Review, error) {
	reviews, err := s.Repo.ListReviews(ctx, mealID)
	return reviews, classify(err, "list reviews")
}

func (s *ReviewService) ListAll(ctx context.Context) ([]models.Review, error) {
	return s.ListForMeal(ctx, "")
}

func (s *ReviewService) ListByEmail(ctx context.Context, email string) ([]models.Review, error) {
	reviews, err := s.Repo.ListReviewsByEmail(ctx, email)
	return reviews, classify(err, "list reviews by email")
}

func (s *ReviewService) Patch(ctx context.Context, id string, req transport.PatchReviewRequest) (*models.Review, error) {
	if req.Ratings != nil {
		if err := checkRating(*req.Ratings); err != nil {
			return nil, err
		}
	}
	rv, err := s.Repo.PatchReview(ctx, id, req)
	if err != nil {
		return nil, classify(err, "patch review")
	}
	return rv, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return classify(s.Repo.DeleteReview(ctx, id), "delete review")
}

func checkRating(a models.Amount) error {
	if a < 0 || a > maxRating {
		return validation("ratings must be between 0 and %d", maxRating)
	}
	return nil
}
