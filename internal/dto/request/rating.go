package request

type SubmitRatingRequest struct {
	StoreID string `json:"store_id" validate:"required,uuid4"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}
