package models

type RegisterRequest struct {
	Name     string   `json:"name" binding:"required,min=2,max=100"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SubmitPaperRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=255"`
	Abstract     string `json:"abstract"`
	VersionLink  string `json:"version_link" binding:"required"`
	ConferenceID uint   `json:"conference_id" binding:"required"`
}

type UploadVersionRequest struct {
	VersionLink string `json:"version_link" binding:"required"`
}

type SubmitReviewRequest struct {
	Verdict  Verdict `json:"verdict" binding:"required,oneof=approved changes_requested rejected"`
	Comments string  `json:"comments"`
}

type UpdateReviewRequest struct {
	Verdict  Verdict `json:"verdict" binding:"omitempty,oneof=approved changes_requested rejected"`
	Comments string  `json:"comments"`
}

type CreateConferenceRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=255"`
	Location string `json:"location" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
}

type UpdateConferenceRequest struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Date     string `json:"date"`
}

type AssignReviewersRequest struct {
	ReviewerIDs []uint `json:"reviewer_ids" binding:"required,min=1"`
}

type PaperListParams struct {
	Status       string `form:"status"`
	AuthorID     uint   `form:"author_id"`
	ConferenceID uint   `form:"conference_id"`
	Page         int    `form:"page,default=1"`
	Limit        int    `form:"limit,default=10"`
	SortBy       string `form:"sort_by,default=created_at"`
	SortOrder    string `form:"sort_order,default=desc"`
}
