package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusOnTheWay  OrderStatus = "on_the_way"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Order is an immutable confirmed purchase. TotalAmount is frozen at checkout
// time; only Status changes afterwards.
type Order struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	UserID      uint          `json:"user_id" gorm:"not null;index"`
	User        User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status      OrderStatus   `json:"status" gorm:"not null;default:'pending'"`
	TotalAmount float64       `json:"total_amount" gorm:"not null"`
	Details     []OrderDetail `json:"details,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// OrderStatusHistory is the audit trail: one row per status change, including
// the initial pending row written at checkout.
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}

// OrderDetail is a frozen per-item snapshot. Price is the catalog price at the
// moment the order was placed, never a live join.
type OrderDetail struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	OrderID  uint     `json:"order_id" gorm:"not null;index"`
	FoodID   uint     `json:"food_id" gorm:"not null"`
	Food     FoodItem `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	Quantity int      `json:"quantity" gorm:"not null"`
	Price    float64  `json:"price" gorm:"not null"`
}
