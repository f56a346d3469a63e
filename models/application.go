package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Terminal approved/rejected 是终态，不允许再次流转
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}

// VendorApplication 商家入驻申请
type VendorApplication struct {
	ID            string            `gorm:"primaryKey;size:255;column:id" json:"id"`
	UserID        string            `gorm:"size:255;not null;index:idx_applications_user;column:user_id" json:"user_id"`
	ApplicantName string            `gorm:"size:255;not null;column:applicant_name" json:"applicant_name"`
	Email         string            `gorm:"size:255;not null;column:email" json:"email"`
	Phone         string            `gorm:"size:50;not null;column:phone" json:"phone"`
	BusinessName  string            `gorm:"size:255;not null;column:business_name" json:"business_name"`
	BusinessType  string            `gorm:"size:100;not null;column:business_type" json:"business_type"`
	Description   string            `gorm:"type:text;not null;column:description" json:"description"`
	Experience    string            `gorm:"type:text;column:experience" json:"experience"`
	Address       string            `gorm:"type:text;not null;column:address" json:"address"`
	Status        ApplicationStatus `gorm:"type:enum('pending','approved','rejected');default:'pending';index:idx_applications_status;column:status" json:"status"`
	Notes         string            `gorm:"type:text;column:notes" json:"notes"`
	ReviewedBy    string            `gorm:"size:255;column:reviewed_by" json:"reviewed_by"`
	ReviewedAt    *time.Time        `gorm:"column:reviewed_at" json:"reviewed_at"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (VendorApplication) TableName() string {
	return "vendor_applications"
}
