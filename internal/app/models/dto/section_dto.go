package dto

// UpdateSectionRequest carries the optional section fields. A nil field keeps the stored value.
type UpdateSectionRequest struct {
	Capacity    *int    `json:"capacity" binding:"omitempty,min=0" example:"30"`
	Description *string `json:"description" binding:"omitempty,max=2000" example:"Thursday 4pm, Soda 306"`
}
