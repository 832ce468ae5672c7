package services

import (
	"math"

	"github.com/bhavani-b03/Restaurant-app/models"

	"gorm.io/gorm"
)

// RatingBucket is one star level of a restaurant's rating distribution.
type RatingBucket struct {
	Star       int `json:"star"`
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// RecomputeAverageRating recalculates a restaurant's average rating from its
// current review set and persists it. 0.0 when there are no reviews. Must run
// inside the same transaction as the review write that triggered it, so a
// committed review is never visible alongside a stale average.
func RecomputeAverageRating(tx *gorm.DB, restaurantID uint) (float64, error) {
	var ratings []int
	if err := tx.Model(&models.Review{}).
		Where("restaurant_id = ?", restaurantID).
		Pluck("rating", &ratings).Error; err != nil {
		return 0, err
	}

	avg := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		avg = roundMeanToTenths(sum, len(ratings))
	}

	if err := tx.Model(&models.Restaurant{}).
		Where("id = ?", restaurantID).
		Update("average_rating", avg).Error; err != nil {
		return 0, err
	}
	return avg, nil
}

// roundMeanToTenths computes sum/count rounded to one decimal place, half to
// even, so 4.75 becomes 4.8 and 1.25 becomes 1.2. Integer arithmetic keeps
// decimal halves exact: 4.45 (89/20) rounds to 4.4, where going through a
// float64 mean would nudge it up to 4.5.
func roundMeanToTenths(sum, count int) float64 {
	tenths := sum * 10
	q := tenths / count
	r := tenths % count
	switch {
	case 2*r > count:
		q++
	case 2*r == count && q%2 != 0:
		q++
	}
	return float64(q) / 10
}

// RatingDistribution returns, for stars 5 down to 1, the review count at that
// star and its share of all reviews. Percentages are rounded per bucket, so
// they need not sum to exactly 100. Zero reviews yields 0% everywhere.
func RatingDistribution(db *gorm.DB, restaurantID uint) ([]RatingBucket, error) {
	type ratingCount struct {
		Rating int
		Count  int
	}
	var rows []ratingCount
	if err := db.Model(&models.Review{}).
		Select("rating, COUNT(*) AS count").
		Where("restaurant_id = ?", restaurantID).
		Group("rating").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[int]int, 5)
	total := 0
	for _, row := range rows {
		counts[row.Rating] = row.Count
		total += row.Count
	}
	if total == 0 {
		total = 1 // avoid divide by zero
	}

	buckets := make([]RatingBucket, 0, 5)
	for star := 5; star >= 1; star-- {
		count := counts[star]
		buckets = append(buckets, RatingBucket{
			Star:       star,
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}
	return buckets, nil
}
