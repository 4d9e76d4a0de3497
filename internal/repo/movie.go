package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kelechio/movieql/internal/models"
)

// DefaultPageSize is the number of movies returned when take is not given.
const DefaultPageSize = 10

// MaxPageSize caps take so a single query cannot sweep the whole table.
const MaxPageSize = 100

// sortColumns whitelists the sortable fields. Anything else falls back to id.
var sortColumns = map[string]string{
	"id":          "id",
	"movieName":   "movie_name",
	"director":    "director",
	"releaseDate": "release_date",
	"createdAt":   "created_at",
}

// ListParams narrows and pages the movies listing.
type ListParams struct {
	Filter string // case-insensitive substring over movieName and description
	SortBy string // one of sortColumns; ascending
	Skip   int
	Take   int
}

// ==========================
// MovieRepo
// ==========================
type MovieRepo struct {
	DB *gorm.DB
}

func NewMovieRepo(db *gorm.DB) *MovieRepo {
	return &MovieRepo{DB: db}
}

// ==========================
// Create Movie
// ==========================
func (r *MovieRepo) Create(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	if err := r.DB.WithContext(ctx).Create(movie).Error; err != nil {
		return nil, translate(err)
	}
	return movie, nil
}

// ==========================
// Get By ID
// ==========================
func (r *MovieRepo) GetByID(ctx context.Context, id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := r.DB.WithContext(ctx).First(&movie, id).Error; err != nil {
		return nil, translate(err)
	}
	return &movie, nil
}

// ==========================
// List Movies
// ==========================
func (r *MovieRepo) List(ctx context.Context, p ListParams) ([]models.Movie, error) {
	col, ok := sortColumns[p.SortBy]
	if !ok {
		col = "id"
	}
	if p.Take <= 0 {
		p.Take = DefaultPageSize
	}
	if p.Take > MaxPageSize {
		p.Take = MaxPageSize
	}
	if p.Skip < 0 {
		p.Skip = 0
	}

	q := r.DB.WithContext(ctx).Model(&models.Movie{})
	if p.Filter != "" {
		pattern := "%" + p.Filter + "%"
		q = q.Where("movie_name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var movies []models.Movie
	err := q.Order(col + " asc").Limit(p.Take).Offset(p.Skip).Find(&movies).Error
	if err != nil {
		return nil, translate(err)
	}
	return movies, nil
}

// ==========================
// List By Owner
// ==========================
func (r *MovieRepo) ListByOwner(ctx context.Context, userID uint) ([]models.Movie, error) {
	var movies []models.Movie
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&movies).Error
	if err != nil {
		return nil, translate(err)
	}
	return movies, nil
}

// ==========================
// Save Movie
// ==========================
// Save writes back a movie previously loaded with GetByID.
func (r *MovieRepo) Save(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	if err := r.DB.WithContext(ctx).Save(movie).Error; err != nil {
		return nil, translate(err)
	}
	return movie, nil
}

// ==========================
// Delete Movie
// ==========================
func (r *MovieRepo) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
