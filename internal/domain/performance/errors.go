package performance

import "errors"

var (
	ErrReviewNotFound   = errors.New("performance review not found")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
