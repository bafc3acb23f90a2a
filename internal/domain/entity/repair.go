package entity

import "time"

// Estados de una orden de reparación.
const (
	RepairPending   = "pending"
	RepairCompleted = "completed"
	RepairCancelled = "cancelled"
	RepairDelivered = "delivered"
)

// Repair representa una orden de reparación de un taller.
type Repair struct {
	ID           string
	ShopID       string
	CustomerName string
	Device       string
	Status       string // pending, completed, cancelled, delivered
	Date         time.Time
}
