package errors

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrRidgeNotFound     = errors.New("ridge not found")
	ErrInfoLinkNotFound  = errors.New("ridge info link not found")
	ErrPeakNotFound      = errors.New("peak not found")
	ErrPeakPhotoNotFound = errors.New("peak photo not found")
	ErrRouteNotFound     = errors.New("route not found")
	ErrSectionNotFound   = errors.New("route section not found")
	ErrPointNotFound     = errors.New("route point not found")
	ErrForbidden         = errors.New("no permission for this action")
	ErrConflict          = errors.New("conflict")
	ErrSlugExhausted     = errors.New("unique slug attempts exhausted")
	ErrUploadFailed      = errors.New("file upload failed")
)
