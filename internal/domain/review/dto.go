package review

type CreateReviewRequest struct {
	BookingID int64  `json:"booking_id" binding:"required,gt=0"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"max=2000"`
}

type ServiceReviewsResponse struct {
	Reviews []Review `json:"reviews"`
	Summary Summary  `json:"summary"`
}
