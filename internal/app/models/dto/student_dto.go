package dto

// CourseIDResponse is returned by GET /students/{id}/course.
// CourseID is null when the student's section has no course.
type CourseIDResponse struct {
	CourseID *int64 `json:"course_id" example:"3"`
}
