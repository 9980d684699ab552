package schema

import "time"

// SERVICE_CONTEXT_ID is the id of the single service_contexts row
const SERVICE_CONTEXT_ID = 1

// ServiceContext stores global switches of the running service
type ServiceContext struct {
	ID          int16     `gorm:"column:id;primaryKey"`
	Maintenance bool      `gorm:"column:maintenance;not null;default:false"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (ServiceContext) TableName() string {
	return "service_contexts"
}
