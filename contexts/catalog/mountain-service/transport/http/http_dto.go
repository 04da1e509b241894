package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CoordinatesDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RidgeDTO struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	EditorID    *int64 `json:"editor_id,omitempty"`
	Active      bool   `json:"active"`
	Changed     string `json:"changed"`
}

type InfoLinkDTO struct {
	ID          int64  `json:"id"`
	RidgeID     int64  `json:"ridge_id"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

type PeakDTO struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	RidgeID     int64  `json:"ridge_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Height      *int   `json:"height,omitempty"`
	PointID     *int64 `json:"point_id,omitempty"`
	Photo       string `json:"photo,omitempty"`
	EditorID    *int64 `json:"editor_id,omitempty"`
	Active      bool   `json:"active"`
	Changed     string `json:"changed"`
}

type PeakPhotoDTO struct {
	ID          int64  `json:"id"`
	PeakID      int64  `json:"peak_id"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
}

type RouteDTO struct {
	ID                   int64  `json:"id"`
	PeakID               int64  `json:"peak_id"`
	Name                 string `json:"name"`
	Slug                 string `json:"slug"`
	Description          string `json:"description"`
	ShortDescription     string `json:"short_description"`
	RecommendedEquipment string `json:"recommended_equipment"`
	Photo                string `json:"photo,omitempty"`
	MapImage             string `json:"map_image,omitempty"`
	Difficulty           string `json:"difficulty"`
	MaxDifficulty        string `json:"max_difficulty"`
	Author               string `json:"author"`
	Length               *int   `json:"length,omitempty"`
	Year                 *int   `json:"year,omitempty"`
	HeightDifference     *int   `json:"height_difference,omitempty"`
	StartHeight          *int   `json:"start_height,omitempty"`
	Descent              string `json:"descent"`
	EditorID             *int64 `json:"editor_id,omitempty"`
	Ready                bool   `json:"ready"`
	Changed              string `json:"changed"`
}

type RouteSectionDTO struct {
	ID          int64  `json:"id"`
	RouteID     int64  `json:"route_id"`
	Num         int    `json:"num"`
	Description string `json:"description"`
	Length      *int   `json:"length,omitempty"`
	Difficulty  string `json:"difficulty"`
	Angle       string `json:"angle"`
}

type RoutePointDTO struct {
	ID          int64   `json:"id"`
	RouteID     int64   `json:"route_id"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type RoutePhotoDTO struct {
	ID          int64  `json:"id"`
	RouteID     int64  `json:"route_id"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
}

type ListRidgesResponse struct {
	Items []RidgeDTO `json:"items"`
}

type RidgeDetailResponse struct {
	Ridge     RidgeDTO      `json:"ridge"`
	Peaks     []PeakDTO     `json:"peaks"`
	InfoLinks []InfoLinkDTO `json:"info_links"`
}

type ListPeaksResponse struct {
	Items []PeakDTO `json:"items"`
}

type PeakDetailResponse struct {
	Peak   PeakDTO         `json:"peak"`
	Ridge  *RidgeDTO       `json:"ridge,omitempty"`
	Point  *CoordinatesDTO `json:"point,omitempty"`
	Photos []PeakPhotoDTO  `json:"photos"`
	Routes []RouteDTO      `json:"routes"`
}

type ListRoutesResponse struct {
	Items []RouteDTO `json:"items"`
}

type RouteDetailResponse struct {
	Route    RouteDTO          `json:"route"`
	Peak     *PeakDTO          `json:"peak,omitempty"`
	Photos   []RoutePhotoDTO   `json:"photos"`
	Sections []RouteSectionDTO `json:"sections"`
	Points   []RoutePointDTO   `json:"points"`
}

type CreateRidgeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateRidgeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type CreateInfoLinkRequest struct {
	Link        string `json:"link"`
	Description string `json:"description"`
}

type CreatePeakRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	RidgeID     int64           `json:"ridge_id"`
	Height      *int            `json:"height"`
	Point       *CoordinatesDTO `json:"point"`
}

type UpdatePeakRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	RidgeID     *int64          `json:"ridge_id"`
	Height      *int            `json:"height"`
	Point       *CoordinatesDTO `json:"point"`
}

type CreateRouteRequest struct {
	Name                 string `json:"name"`
	PeakID               int64  `json:"peak_id"`
	Description          string `json:"description"`
	ShortDescription     string `json:"short_description"`
	RecommendedEquipment string `json:"recommended_equipment"`
	Difficulty           string `json:"difficulty"`
	MaxDifficulty        string `json:"max_difficulty"`
	Author               string `json:"author"`
	Length               *int   `json:"length"`
	Year                 *int   `json:"year"`
	HeightDifference     *int   `json:"height_difference"`
	StartHeight          *int   `json:"start_height"`
	Descent              string `json:"descent"`
}

type UpdateRouteRequest struct {
	Name                 *string `json:"name"`
	PeakID               *int64  `json:"peak_id"`
	Description          *string `json:"description"`
	ShortDescription     *string `json:"short_description"`
	RecommendedEquipment *string `json:"recommended_equipment"`
	Difficulty           *string `json:"difficulty"`
	MaxDifficulty        *string `json:"max_difficulty"`
	Author               *string `json:"author"`
	Length               *int    `json:"length"`
	Year                 *int    `json:"year"`
	HeightDifference     *int    `json:"height_difference"`
	StartHeight          *int    `json:"start_height"`
	Descent              *string `json:"descent"`
	Ready                *bool   `json:"ready"`
}

type CreateSectionRequest struct {
	Num         int    `json:"num"`
	Description string `json:"description"`
	Length      *int   `json:"length"`
	Difficulty  string `json:"difficulty"`
	Angle       string `json:"angle"`
}

type UpdateSectionRequest struct {
	Num         *int    `json:"num"`
	Description *string `json:"description"`
	Length      *int    `json:"length"`
	Difficulty  *string `json:"difficulty"`
	Angle       *string `json:"angle"`
}

type CreateRoutePointRequest struct {
	Description string          `json:"description"`
	Point       *CoordinatesDTO `json:"point"`
}

// UploadResult reports an upload failure when the file store rejected the
// blob but the request itself was well-formed. Successful uploads answer
// with the photo or entity DTO instead.
type UploadResult struct {
	Saved   bool   `json:"saved"`
	Message string `json:"message,omitempty"`
}
