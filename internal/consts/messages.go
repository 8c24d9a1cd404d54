package consts

// 对外返回的提示文案
const (
	MsgFieldsRequired  = "All fields are required"
	MsgImageRequired   = "Image is required"
	MsgYearInvalid     = "Year must be a number"
	MsgRatingInvalid   = "Rating must be a number"
	MsgMovieNotFound   = "Movie not found"
	MsgMovieDeleted    = "Movie deleted successfully"
	MsgOnlyImages      = "Only image files are allowed!"
	MsgImageTooLarge   = "Image must not exceed %dMB"
	MsgTooManyRequests = "Too many requests, please try again later"
)
