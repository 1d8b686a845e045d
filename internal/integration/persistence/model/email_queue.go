package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// EmailQueueModel is a row of the outbound email queue. Params holds the
// values rendered into the template and is stored as a JSON document.
type EmailQueueModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Template    string         `gorm:"column:template_type;type:varchar(50);not null"`
	ToAddress   string         `gorm:"column:recipient_email;type:varchar(255);not null"`
	ToName      string         `gorm:"column:recipient_name;type:varchar(255)"`
	Subject     string         `gorm:"type:varchar(500);not null"`
	Params      map[string]any `gorm:"column:template_data;type:text;not null;serializer:json"`
	Status      string         `gorm:"type:varchar(20);not null;default:'pending';index:idx_email_queue_ready,priority:1"`
	Attempts    int            `gorm:"not null;default:0"`
	MaxAttempts int            `gorm:"not null;default:3"`
	LastError   string         `gorm:"type:text"`
	ProviderID  string         `gorm:"type:varchar(100)"`
	CreatedAt   time.Time      `gorm:"not null"`
	ScheduledAt time.Time      `gorm:"not null;index:idx_email_queue_ready,priority:2"`
	ProcessedAt *time.Time
}

func (EmailQueueModel) TableName() string {
	return "email_queue"
}

func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	params := m.Params
	if params == nil {
		params = map[string]any{}
	}
	return &entity.EmailJob{
		ID:             m.ID,
		TemplateType:   entity.EmailTemplateType(m.Template),
		RecipientEmail: m.ToAddress,
		RecipientName:  m.ToName,
		Subject:        m.Subject,
		TemplateData:   params,
		Status:         entity.EmailStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ProviderID:     m.ProviderID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    m.ProcessedAt,
	}
}

func EmailQueueModelFromEntity(job *entity.EmailJob) *EmailQueueModel {
	params := job.TemplateData
	if params == nil {
		params = map[string]any{}
	}
	return &EmailQueueModel{
		ID:          job.ID,
		Template:    string(job.TemplateType),
		ToAddress:   job.RecipientEmail,
		ToName:      job.RecipientName,
		Subject:     job.Subject,
		Params:      params,
		Status:      string(job.Status),
		Attempts:    job.Attempts,
		MaxAttempts: job.MaxAttempts,
		LastError:   job.LastError,
		ProviderID:  job.ProviderID,
		CreatedAt:   job.CreatedAt,
		ScheduledAt: job.ScheduledAt,
		ProcessedAt: job.ProcessedAt,
	}
}
