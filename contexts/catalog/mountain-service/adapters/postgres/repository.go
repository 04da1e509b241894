package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"vershyna/contexts/catalog/mountain-service/domain/entities"
	domainerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
	"vershyna/contexts/catalog/mountain-service/ports"
)

// Repository is the relational catalog adapter. One instance serves every
// catalog repository port plus the slug index.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates or updates the catalog tables. Unique indexes on the slug
// columns are the final arbiter for slug races.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&geoPointModel{},
		&ridgeModel{},
		&ridgeInfoLinkModel{},
		&peakModel{},
		&peakPhotoModel{},
		&routeModel{},
		&routeSectionModel{},
		&routePointModel{},
		&routePhotoModel{},
	)
}

func (r *Repository) SlugInUse(ctx context.Context, kind string, slug string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx)
	switch kind {
	case ports.SlugKindRidge:
		tx = tx.Model(&ridgeModel{})
	case ports.SlugKindPeak:
		tx = tx.Model(&peakModel{})
	case ports.SlugKindRoute:
		tx = tx.Model(&routeModel{})
	default:
		return false, domainerrors.ErrInvalidRequest
	}
	if err := tx.Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateGeoPoint(ctx context.Context, point *entities.GeoPoint) error {
	row := geoPointModel{
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	point.ID = row.ID
	return nil
}

func (r *Repository) GetGeoPoint(ctx context.Context, id int64) (entities.GeoPoint, error) {
	var row geoPointModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.GeoPoint{}, domainerrors.ErrPointNotFound
		}
		return entities.GeoPoint{}, err
	}
	return row.toEntity(), nil
}

// SystemClock is the default runtime clock implementation.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
