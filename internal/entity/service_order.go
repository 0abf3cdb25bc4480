package entity

import (
	"time"

	"gorm.io/gorm"
)

// The four recognized order states.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// EquipmentType values accepted by the intake form.
const (
	EquipmentDesktop  = "desktop"
	EquipmentNotebook = "notebook"
	EquipmentTVLED    = "tv-led"
	EquipmentTVLCD    = "tv-lcd"
	EquipmentMonitor  = "monitor"
	EquipmentOutro    = "outro"
)

var statusLabels = map[string]string{
	StatusPending:    "Pendente",
	StatusInProgress: "Em Andamento",
	StatusCompleted:  "Concluído",
	StatusCancelled:  "Cancelado",
}

var equipmentLabels = map[string]string{
	EquipmentDesktop:  "Computador Desktop",
	EquipmentNotebook: "Notebook",
	EquipmentTVLED:    "TV LED",
	EquipmentTVLCD:    "TV LCD",
	EquipmentMonitor:  "Monitor",
	EquipmentOutro:    "Outro",
}

// ServiceOrder is one service ticket. ProtocolNumber is the only key clients
// ever see; ID exists to give listings a stable insertion order.
type ServiceOrder struct {
	ID              uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	ProtocolNumber  string    `json:"protocol_number" gorm:"column:protocol_number;size:16;not null;uniqueIndex"`
	ClientName      string    `json:"client_name" gorm:"column:client_name;size:150;not null"`
	ClientPhone     string    `json:"client_phone" gorm:"column:client_phone;size:30;not null;index"`
	ClientEmail     string    `json:"client_email" gorm:"column:client_email;size:150"`
	EquipmentType   string    `json:"equipment_type" gorm:"column:equipment_type;size:20;not null"`
	EquipmentBrand  string    `json:"equipment_brand" gorm:"column:equipment_brand;size:100"`
	SerialNumber    string    `json:"serial_number" gorm:"column:serial_number;size:100"`
	Problem         string    `json:"problem_description" gorm:"column:problem_description;type:text;not null"`
	AdditionalNotes string    `json:"additional_notes" gorm:"column:additional_notes;type:text"`
	Status          string    `json:"status" gorm:"size:20;not null;default:pending;index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (ServiceOrder) TableName() string {
	return "service_orders"
}

// ValidStatus reports whether s is one of the four recognized states.
func ValidStatus(s string) bool {
	_, ok := statusLabels[s]
	return ok
}

// TerminalStatus reports whether s admits no further transition to a different state.
func TerminalStatus(s string) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether an order currently in from may be set to to.
// Re-asserting the current status is always allowed; only leaving a terminal
// state for a different one is not.
func CanTransition(from, to string) bool {
	if !ValidStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	return !TerminalStatus(from)
}

// StatusLabel returns the display label for a status, or the raw value when unknown.
func StatusLabel(s string) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return s
}

// EquipmentLabel returns the display label for an equipment type, or the raw
// value when unknown (unknown types pass through unlabeled).
func EquipmentLabel(t string) string {
	if label, ok := equipmentLabels[t]; ok {
		return label
	}
	return t
}

// AutoMigrate creates the service order schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&ServiceOrder{})
}
