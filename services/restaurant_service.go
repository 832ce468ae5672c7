package services

import (
	"errors"
	"strings"

	"github.com/bhavani-b03/Restaurant-app/config"
	"github.com/bhavani-b03/Restaurant-app/models"

	"gorm.io/gorm"
)

// PageSize is the fixed number of restaurants per listing page.
const PageSize = 10

// SortOrder is the single, unambiguous sort directive for restaurant
// listings. The old sort_by / sort_by_rating query pair is translated to one
// of these at the HTTP boundary.
type SortOrder string

const (
	SortNone       SortOrder = ""
	SortPriceLow   SortOrder = "price_low"
	SortPriceHigh  SortOrder = "price_high"
	SortRatingHigh SortOrder = "rating_high"
	SortRatingLow  SortOrder = "rating_low"
)

// ListFilters is the typed form of the listing query parameters. Nil pointer
// fields mean "not supplied"; slice fields are OR sets within themselves and
// all populated fields compose conjunctively.
type ListFilters struct {
	CostForTwoMin *int              // inclusive lower bound
	CostForTwoMax *int              // inclusive upper bound
	DietTypes     []models.DietType // membership
	CuisineIDs    []uint            // restaurant qualifies if it has ANY of these
	Ratings       []int             // floor(average_rating) membership, 1-5
	IsSpotlight   *bool
	Search        string // case-insensitive substring on name
	Sort          SortOrder
	Page          int // 1-based
}

// RestaurantView is a restaurant annotated with the caller's relationship to
// it. Both flags are false for anonymous callers.
type RestaurantView struct {
	models.Restaurant
	IsBookmarked bool `json:"is_bookmarked"`
	IsVisited    bool `json:"is_visited"`
}

type RestaurantPage struct {
	Restaurants []RestaurantView `json:"restaurants"`
	Page        int              `json:"page"`
	PageSize    int              `json:"page_size"`
	TotalCount  int64            `json:"total_count"`
	TotalPages  int              `json:"total_pages"`
}

// RestaurantDetail is the single-restaurant view with its reviews and rating
// distribution.
type RestaurantDetail struct {
	RestaurantView
	RatingStats []RatingBucket `json:"rating_stats"`
	Reviews     []ReviewView   `json:"reviews"`
}

type ReviewView struct {
	models.Review
	UserName string `json:"user_name"`
}

type RestaurantService struct{}

func NewRestaurantService() *RestaurantService {
	return &RestaurantService{}
}

// query builds the filtered base query. Built fresh for every finisher so the
// count and the page fetch do not share statement state.
func (s *RestaurantService) query(f ListFilters) *gorm.DB {
	q := config.DB.Model(&models.Restaurant{})

	if f.CostForTwoMin != nil {
		q = q.Where("cost_for_two >= ?", *f.CostForTwoMin)
	}
	if f.CostForTwoMax != nil {
		q = q.Where("cost_for_two <= ?", *f.CostForTwoMax)
	}
	if len(f.DietTypes) > 0 {
		q = q.Where("diet_type IN ?", f.DietTypes)
	}
	if len(f.CuisineIDs) > 0 {
		// ANY-of semantics: one matching cuisine qualifies the restaurant.
		q = q.Where("restaurants.id IN (SELECT restaurant_id FROM restaurant_cuisines WHERE cuisine_id IN ?)",
			f.CuisineIDs)
	}
	if len(f.Ratings) > 0 {
		// Star membership on the rounded-down average: star r covers [r, r+1).
		star := config.DB.Where("average_rating >= ? AND average_rating < ?",
			float64(f.Ratings[0]), float64(f.Ratings[0])+1)
		for _, r := range f.Ratings[1:] {
			star = star.Or("average_rating >= ? AND average_rating < ?",
				float64(r), float64(r)+1)
		}
		q = q.Where(star)
	}
	if f.IsSpotlight != nil {
		q = q.Where("is_spotlight = ?", *f.IsSpotlight)
	}
	if f.Search != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(f.Search))+"%")
	}
	return q
}

// escapeLike neutralizes LIKE metacharacters so a search term only matches
// literal occurrences: "50%" must not match everything.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func orderClause(sort SortOrder) string {
	switch sort {
	case SortPriceLow:
		return "cost_for_two ASC"
	case SortPriceHigh:
		return "cost_for_two DESC"
	case SortRatingLow:
		return "average_rating ASC"
	case SortRatingHigh:
		return "average_rating DESC"
	default:
		// base ordering: best rated first
		return "average_rating DESC"
	}
}

// List returns one page of restaurants matching the filters, annotated with
// the caller's bookmark/visited state. callerID 0 means anonymous.
func (s *RestaurantService) List(f ListFilters, callerID uint) (*RestaurantPage, error) {
	var total int64
	if err := s.query(f).Count(&total).Error; err != nil {
		return nil, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}

	var restaurants []models.Restaurant
	if err := s.query(f).
		Preload("Cuisines").
		Preload("Images").
		Order(orderClause(f.Sort)).
		Order("restaurants.id ASC"). // deterministic tiebreak
		Offset((page - 1) * PageSize).
		Limit(PageSize).
		Find(&restaurants).Error; err != nil {
		return nil, err
	}

	views, err := s.annotate(restaurants, callerID)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	return &RestaurantPage{
		Restaurants: views,
		Page:        page,
		PageSize:    PageSize,
		TotalCount:  total,
		TotalPages:  totalPages,
	}, nil
}

// annotate attaches the caller's bookmark/visited flags to each restaurant.
func (s *RestaurantService) annotate(restaurants []models.Restaurant, callerID uint) ([]RestaurantView, error) {
	views := make([]RestaurantView, len(restaurants))
	for i, r := range restaurants {
		views[i] = RestaurantView{Restaurant: r}
	}
	if callerID == 0 || len(restaurants) == 0 {
		return views, nil
	}

	ids := make([]uint, len(restaurants))
	for i, r := range restaurants {
		ids[i] = r.ID
	}

	var bookmarked []uint
	if err := config.DB.Model(&models.Bookmark{}).
		Where("user_id = ? AND restaurant_id IN ?", callerID, ids).
		Pluck("restaurant_id", &bookmarked).Error; err != nil {
		return nil, err
	}
	var visited []uint
	if err := config.DB.Model(&models.Visited{}).
		Where("user_id = ? AND restaurant_id IN ?", callerID, ids).
		Pluck("restaurant_id", &visited).Error; err != nil {
		return nil, err
	}

	bookmarkedSet := make(map[uint]bool, len(bookmarked))
	for _, id := range bookmarked {
		bookmarkedSet[id] = true
	}
	visitedSet := make(map[uint]bool, len(visited))
	for _, id := range visited {
		visitedSet[id] = true
	}

	for i := range views {
		views[i].IsBookmarked = bookmarkedSet[views[i].ID]
		views[i].IsVisited = visitedSet[views[i].ID]
	}
	return views, nil
}

// Get returns one restaurant with cuisines, images, reviews and rating
// distribution. ErrNotFound when the id does not resolve.
func (s *RestaurantService) Get(id uint, callerID uint) (*RestaurantDetail, error) {
	var restaurant models.Restaurant
	err := config.DB.
		Preload("Cuisines").
		Preload("Images").
		First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	views, err := s.annotate([]models.Restaurant{restaurant}, callerID)
	if err != nil {
		return nil, err
	}

	stats, err := RatingDistribution(config.DB, id)
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := config.DB.
		Preload("User").
		Where("restaurant_id = ?", id).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	reviewViews := make([]ReviewView, len(reviews))
	for i, r := range reviews {
		reviewViews[i] = ReviewView{Review: r, UserName: r.User.FullName}
	}

	return &RestaurantDetail{
		RestaurantView: views[0],
		RatingStats:    stats,
		Reviews:        reviewViews,
	}, nil
}
