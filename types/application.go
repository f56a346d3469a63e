package types

import (
	"time"

	"Bazaar/models"
)

type SubmitApplicationRequest struct {
	ApplicantName string `json:"applicant_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	BusinessName  string `json:"business_name"`
	BusinessType  string `json:"business_type"`
	Description   string `json:"description"`
	Experience    string `json:"experience"`
	Address       string `json:"address"`
}

type ReviewRequest struct {
	Decision string `json:"decision" binding:"required"` // approve / reject
	Notes    string `json:"notes"`
}

// Application 后台列表视图，带审核人的冗余名字
type Application struct {
	models.VendorApplication
	ReviewerName string `json:"reviewer_name"`
}

// VendorApprovedEvent 审核通过后投递到 MQ 的事件体
type VendorApprovedEvent struct {
	ApplicationID string    `json:"application_id"`
	UserID        string    `json:"user_id"`
	ReviewedBy    string    `json:"reviewed_by"`
	ReviewedAt    time.Time `json:"reviewed_at"`
}
