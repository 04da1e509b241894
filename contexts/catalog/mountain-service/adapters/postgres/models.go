package postgresadapter

import (
	"time"

	"vershyna/contexts/catalog/mountain-service/domain/entities"
)

// Table names follow the original catalog schema.

type geoPointModel struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Latitude  float64 `gorm:"column:latitude"`
	Longitude float64 `gorm:"column:longitude"`
}

func (geoPointModel) TableName() string { return "geopoint" }

func (m geoPointModel) toEntity() entities.GeoPoint {
	return entities.GeoPoint{
		ID:        m.ID,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
	}
}

type ridgeModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Slug        string    `gorm:"column:slug;size:128;uniqueIndex"`
	Name        string    `gorm:"column:name;size:128"`
	Description string    `gorm:"column:description;type:text"`
	EditorID    *int64    `gorm:"column:editor_id"`
	Active      bool      `gorm:"column:active"`
	Changed     time.Time `gorm:"column:changed"`
}

func (ridgeModel) TableName() string { return "ridge" }

func (m ridgeModel) toEntity() entities.Ridge {
	return entities.Ridge{
		ID:          m.ID,
		Slug:        m.Slug,
		Name:        m.Name,
		Description: m.Description,
		EditorID:    m.EditorID,
		Active:      m.Active,
		Changed:     m.Changed.UTC(),
	}
}

func ridgeModelFromEntity(item entities.Ridge) ridgeModel {
	return ridgeModel{
		ID:          item.ID,
		Slug:        item.Slug,
		Name:        item.Name,
		Description: item.Description,
		EditorID:    item.EditorID,
		Active:      item.Active,
		Changed:     item.Changed.UTC(),
	}
}

type ridgeInfoLinkModel struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	RidgeID     int64  `gorm:"column:ridge_id;index"`
	Link        string `gorm:"column:link;size:128;uniqueIndex"`
	Description string `gorm:"column:description;size:128"`
}

func (ridgeInfoLinkModel) TableName() string { return "ridge_info_link" }

func (m ridgeInfoLinkModel) toEntity() entities.RidgeInfoLink {
	return entities.RidgeInfoLink{
		ID:          m.ID,
		RidgeID:     m.RidgeID,
		Link:        m.Link,
		Description: m.Description,
	}
}

type peakModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Slug        string    `gorm:"column:slug;size:64;uniqueIndex"`
	RidgeID     int64     `gorm:"column:ridge_id;index"`
	Name        string    `gorm:"column:name;size:64"`
	Description string    `gorm:"column:description;type:text"`
	Height      *int      `gorm:"column:height"`
	PointID     *int64    `gorm:"column:point_id"`
	Photo       string    `gorm:"column:photo;size:128"`
	EditorID    *int64    `gorm:"column:editor_id"`
	Active      bool      `gorm:"column:active"`
	Changed     time.Time `gorm:"column:changed"`
}

func (peakModel) TableName() string { return "peak" }

func (m peakModel) toEntity() entities.Peak {
	return entities.Peak{
		ID:          m.ID,
		Slug:        m.Slug,
		RidgeID:     m.RidgeID,
		Name:        m.Name,
		Description: m.Description,
		Height:      m.Height,
		PointID:     m.PointID,
		Photo:       m.Photo,
		EditorID:    m.EditorID,
		Active:      m.Active,
		Changed:     m.Changed.UTC(),
	}
}

func peakModelFromEntity(item entities.Peak) peakModel {
	return peakModel{
		ID:          item.ID,
		Slug:        item.Slug,
		RidgeID:     item.RidgeID,
		Name:        item.Name,
		Description: item.Description,
		Height:      item.Height,
		PointID:     item.PointID,
		Photo:       item.Photo,
		EditorID:    item.EditorID,
		Active:      item.Active,
		Changed:     item.Changed.UTC(),
	}
}

type peakPhotoModel struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	PeakID      int64  `gorm:"column:peak_id;index"`
	Photo       string `gorm:"column:photo;size:128;uniqueIndex"`
	Description string `gorm:"column:description;size:128"`
}

func (peakPhotoModel) TableName() string { return "peak_photo" }

func (m peakPhotoModel) toEntity() entities.PeakPhoto {
	return entities.PeakPhoto{
		ID:          m.ID,
		PeakID:      m.PeakID,
		Photo:       m.Photo,
		Description: m.Description,
	}
}

type routeModel struct {
	ID                   int64     `gorm:"column:id;primaryKey;autoIncrement"`
	PeakID               int64     `gorm:"column:peak_id;index"`
	Name                 string    `gorm:"column:name;size:64"`
	Slug                 string    `gorm:"column:slug;size:64;uniqueIndex"`
	Description          string    `gorm:"column:description;type:text"`
	ShortDescription     string    `gorm:"column:short_description;type:text"`
	RecommendedEquipment string    `gorm:"column:recommended_equipment;type:text"`
	Photo                string    `gorm:"column:photo;size:128"`
	MapImage             string    `gorm:"column:map_image;size:128"`
	Difficulty           string    `gorm:"column:difficulty;size:3"`
	MaxDifficulty        string    `gorm:"column:max_difficulty;size:16"`
	Author               string    `gorm:"column:author;size:64"`
	Length               *int      `gorm:"column:length"`
	Year                 *int      `gorm:"column:year"`
	HeightDifference     *int      `gorm:"column:height_difference"`
	StartHeight          *int      `gorm:"column:start_height"`
	Descent              string    `gorm:"column:descent;type:text"`
	EditorID             *int64    `gorm:"column:editor_id"`
	Ready                bool      `gorm:"column:ready"`
	Changed              time.Time `gorm:"column:changed"`
}

func (routeModel) TableName() string { return "route" }

func (m routeModel) toEntity() entities.Route {
	return entities.Route{
		ID:                   m.ID,
		PeakID:               m.PeakID,
		Name:                 m.Name,
		Slug:                 m.Slug,
		Description:          m.Description,
		ShortDescription:     m.ShortDescription,
		RecommendedEquipment: m.RecommendedEquipment,
		Photo:                m.Photo,
		MapImage:             m.MapImage,
		Difficulty:           m.Difficulty,
		MaxDifficulty:        m.MaxDifficulty,
		Author:               m.Author,
		Length:               m.Length,
		Year:                 m.Year,
		HeightDifference:     m.HeightDifference,
		StartHeight:          m.StartHeight,
		Descent:              m.Descent,
		EditorID:             m.EditorID,
		Ready:                m.Ready,
		Changed:              m.Changed.UTC(),
	}
}

func routeModelFromEntity(item entities.Route) routeModel {
	return routeModel{
		ID:                   item.ID,
		PeakID:               item.PeakID,
		Name:                 item.Name,
		Slug:                 item.Slug,
		Description:          item.Description,
		ShortDescription:     item.ShortDescription,
		RecommendedEquipment: item.RecommendedEquipment,
		Photo:                item.Photo,
		MapImage:             item.MapImage,
		Difficulty:           item.Difficulty,
		MaxDifficulty:        item.MaxDifficulty,
		Author:               item.Author,
		Length:               item.Length,
		Year:                 item.Year,
		HeightDifference:     item.HeightDifference,
		StartHeight:          item.StartHeight,
		Descent:              item.Descent,
		EditorID:             item.EditorID,
		Ready:                item.Ready,
		Changed:              item.Changed.UTC(),
	}
}

type routeSectionModel struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	RouteID     int64  `gorm:"column:route_id;index"`
	Num         int    `gorm:"column:num"`
	Description string `gorm:"column:description;type:text"`
	Length      *int   `gorm:"column:length"`
	Difficulty  string `gorm:"column:difficulty;size:32"`
	Angle       string `gorm:"column:angle;size:32"`
}

func (routeSectionModel) TableName() string { return "route_section" }

func (m routeSectionModel) toEntity() entities.RouteSection {
	return entities.RouteSection{
		ID:          m.ID,
		RouteID:     m.RouteID,
		Num:         m.Num,
		Description: m.Description,
		Length:      m.Length,
		Difficulty:  m.Difficulty,
		Angle:       m.Angle,
	}
}

type routePointModel struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	RouteID     int64  `gorm:"column:route_id;index"`
	PointID     *int64 `gorm:"column:point_id"`
	Description string `gorm:"column:description;size:128"`
}

func (routePointModel) TableName() string { return "route_point" }

func (m routePointModel) toEntity() entities.RoutePoint {
	return entities.RoutePoint{
		ID:          m.ID,
		RouteID:     m.RouteID,
		PointID:     m.PointID,
		Description: m.Description,
	}
}

type routePhotoModel struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	RouteID     int64  `gorm:"column:route_id;index"`
	Photo       string `gorm:"column:photo;size:128;uniqueIndex"`
	Description string `gorm:"column:description;size:128"`
}

func (routePhotoModel) TableName() string { return "route_photo" }

func (m routePhotoModel) toEntity() entities.RoutePhoto {
	return entities.RoutePhoto{
		ID:          m.ID,
		RouteID:     m.RouteID,
		Photo:       m.Photo,
		Description: m.Description,
	}
}
