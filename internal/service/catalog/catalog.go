package catalog

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zeromade/storefront/internal/events"
	"github.com/zeromade/storefront/internal/logging"
	"github.com/zeromade/storefront/internal/models"
	"github.com/zeromade/storefront/internal/search"
	"github.com/zeromade/storefront/internal/service"
	"github.com/zeromade/storefront/internal/store"
)

type Service struct {
	Store    store.Store
	Producer *events.Producer
	Search   *search.Client
}

func (s *Service) Products(ctx context.Context) ([]models.Product, error) {
	snap, err := s.Store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Products, nil
}

// Product resolves by id first, then by slug.
func (s *Service) Product(ctx context.Context, idOrSlug string) (*models.Product, error) {
	snap, err := s.Store.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range snap.Products {
		if snap.Products[i].ID == idOrSlug || snap.Products[i].Slug == idOrSlug {
			return &snap.Products[i], nil
		}
	}
	return nil, fmt.Errorf("%w: product %q", service.ErrNotFound, idOrSlug)
}

// Categories returns distinct category names in catalog order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	snap, err := s.Store.Read(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(snap.Products))
	categories := []string{}
	for _, p := range snap.Products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}

type CreateProductInput struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         int      `json:"price"`
	Image         string   `json:"image"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	OriginalPrice *int     `json:"originalPrice"`
	Badge         *string  `json:"badge"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
}

func (in CreateProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", service.ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: category is required", service.ErrValidation)
	}
	if strings.TrimSpace(in.Slug) == "" {
		return fmt.Errorf("%w: slug is required", service.ErrValidation)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", service.ErrValidation)
	}
	if u, err := url.Parse(in.Image); err != nil || u.Scheme == "" && !strings.HasPrefix(in.Image, "/") {
		return fmt.Errorf("%w: image must be a URL", service.ErrValidation)
	}
	return nil
}

// CreateProduct is an admin mutation. New products start unrated with an
// empty review list.
func (s *Service) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create_product")

	if err := in.validate(); err != nil {
		return nil, err
	}

	product := models.Product{
		ID:            "prod_" + uuid.NewString(),
		Name:          in.Name,
		Category:      in.Category,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Image:         in.Image,
		Badge:         in.Badge,
		Slug:          in.Slug,
		Description:   in.Description,
		Colors:        in.Colors,
		Sizes:         in.Sizes,
		Rating:        0,
		Reviews:       0,
		ReviewsList:   []models.Review{},
	}

	err := s.Store.Update(ctx, func(snap *store.Snapshot) error {
		snap.Products = append(snap.Products, product)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.Search.IndexProduct(ctx, product); err != nil {
		l.Warn("index_failed", "product_id", product.ID, "error", err)
	}
	s.publish(ctx, product.ID, map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})

	l.Info("product_created", "product_id", product.ID)
	return &product, nil
}

// DeleteProduct is an admin mutation.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	l := logging.FromContext(ctx).With("svc", "catalog.delete_product")

	err := s.Store.Update(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Products {
			if snap.Products[i].ID == id {
				snap.Products = append(snap.Products[:i], snap.Products[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: product %q", service.ErrNotFound, id)
	})
	if err != nil {
		return err
	}

	if err := s.Search.DeleteProduct(ctx, id); err != nil {
		l.Warn("unindex_failed", "product_id", id, "error", err)
	}
	s.publish(ctx, id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info("product_deleted", "product_id", id)
	return nil
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Reviewer is the authenticated identity submitting a review.
type Reviewer struct {
	ID   string
	Name string
}

// AddReview appends a review to a product and recomputes its running average
// rating, rounded to one decimal place.
func (s *Service) AddReview(ctx context.Context, productID string, in ReviewInput, reviewer Reviewer) (*models.Review, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.add_review", "product_id", productID)

	if reviewer.ID == "" {
		return nil, fmt.Errorf("%w: review requires an authenticated user", service.ErrUnauthorized)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", service.ErrValidation)
	}
	if strings.TrimSpace(in.Comment) == "" {
		return nil, fmt.Errorf("%w: comment is required", service.ErrValidation)
	}

	review := models.Review{
		ID:       "rev_" + uuid.NewString(),
		UserID:   reviewer.ID,
		UserName: reviewer.Name,
		Rating:   in.Rating,
		Comment:  in.Comment,
		Date:     time.Now().UTC(),
	}

	err := s.Store.Update(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Products {
			p := &snap.Products[i]
			if p.ID != productID {
				continue
			}
			p.ReviewsList = append(p.ReviewsList, review)
			p.Reviews = len(p.ReviewsList)
			total := 0
			for _, r := range p.ReviewsList {
				total += r.Rating
			}
			p.Rating = math.Round(float64(total)/float64(p.Reviews)*10) / 10
			return nil
		}
		return fmt.Errorf("%w: product %q", service.ErrNotFound, productID)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, productID, map[string]any{
		"type":      "review_added",
		"productID": productID,
		"reviewID":  review.ID,
		"rating":    review.Rating,
	})

	l.Info("review_added", "review_id", review.ID, "rating", review.Rating)
	return &review, nil
}

func (s *Service) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.Publish(pubCtx, events.TopicProductEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "error", err)
	}
}
