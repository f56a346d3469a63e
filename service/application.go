package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"Bazaar/models"
	"Bazaar/pkg/log"
	"Bazaar/pkg/mq"
	"Bazaar/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ApplicationStore interface {
	Create(ctx context.Context, app *models.VendorApplication) error
	FindById(ctx context.Context, id any) (*models.VendorApplication, error)
	ListDetailed(ctx context.Context) ([]types.Application, error)
	HasPending(ctx context.Context, userID string) (bool, error)
	// Review 审核结论和角色晋升在同一事务里落库
	Review(ctx context.Context, app *models.VendorApplication, promote bool) error
}

// EventPublisher 领域事件出口，生产实现是 mq.Producer
type EventPublisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
}

// ApplicationService 入驻申请状态机：pending → approved / rejected，终态不再流转。
// 审核通过时申请人角色同事务晋升为 vendor。
type ApplicationService struct {
	Store  ApplicationStore
	Events EventPublisher
}

var _ IApplicationService = (*ApplicationService)(nil)

type IApplicationService interface {
	Submit(ctx context.Context, userID string, req *types.SubmitApplicationRequest) (*models.VendorApplication, error)
	List(ctx context.Context) ([]types.Application, error)
	Review(ctx context.Context, reviewerID, applicationID string, req *types.ReviewRequest) error
}

func (s *ApplicationService) Submit(ctx context.Context, userID string, req *types.SubmitApplicationRequest) (*models.VendorApplication, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: a resolved profile is required", ErrValidation)
	}

	required := map[string]string{
		"applicant_name": req.ApplicantName,
		"email":          req.Email,
		"phone":          req.Phone,
		"business_name":  req.BusinessName,
		"business_type":  req.BusinessType,
		"description":    req.Description,
		"address":        req.Address,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}

	pending, err := s.Store.HasPending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: check pending application: %v", ErrPersistence, err)
	}
	if pending {
		return nil, fmt.Errorf("%w: an application is already pending review", ErrValidation)
	}

	app := &models.VendorApplication{
		ID:            uuid.NewString(),
		UserID:        userID,
		ApplicantName: req.ApplicantName,
		Email:         req.Email,
		Phone:         req.Phone,
		BusinessName:  req.BusinessName,
		BusinessType:  req.BusinessType,
		Description:   req.Description,
		Experience:    req.Experience,
		Address:       req.Address,
		Status:        models.ApplicationPending,
	}
	if err := s.Store.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("%w: create application: %v", ErrPersistence, err)
	}
	return app, nil
}

func (s *ApplicationService) List(ctx context.Context) ([]types.Application, error) {
	applications, err := s.Store.ListDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list applications: %v", ErrPersistence, err)
	}
	if applications == nil {
		applications = []types.Application{}
	}
	return applications, nil
}

func (s *ApplicationService) Review(ctx context.Context, reviewerID, applicationID string, req *types.ReviewRequest) error {
	var status models.ApplicationStatus
	switch req.Decision {
	case "approve":
		status = models.ApplicationApproved
	case "reject":
		status = models.ApplicationRejected
	default:
		return fmt.Errorf("%w: decision must be approve or reject", ErrValidation)
	}

	app, err := s.Store.FindById(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: application %s", ErrNotFound, applicationID)
		}
		return fmt.Errorf("%w: find application: %v", ErrPersistence, err)
	}

	// approved/rejected 是终态，不允许二次审核
	if app.Status.Terminal() {
		return fmt.Errorf("%w: application already %s", ErrValidation, app.Status)
	}

	now := time.Now()
	app.Status = status
	app.Notes = req.Notes
	app.ReviewedBy = reviewerID
	app.ReviewedAt = &now

	promote := status == models.ApplicationApproved
	if err := s.Store.Review(ctx, app, promote); err != nil {
		return fmt.Errorf("%w: review application: %v", ErrPersistence, err)
	}

	if promote && s.Events != nil {
		body, _ := json.Marshal(types.VendorApprovedEvent{
			ApplicationID: app.ID,
			UserID:        app.UserID,
			ReviewedBy:    reviewerID,
			ReviewedAt:    now,
		})
		if err := s.Events.Publish(ctx, mq.TopicVendorApproved, body); err != nil {
			log.L.Warn("publish vendor approved event", zap.String("application_id", app.ID), zap.Error(err))
		}
	}
	return nil
}
