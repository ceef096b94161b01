package models

// OrderStatus is a row of the order status master list
type OrderStatus struct {
	ID     int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name   string `json:"name" gorm:"type:varchar(255)"`
	SortNo int    `json:"sort_no" gorm:"column:sort_no"`
}

// TableName указывает имя таблицы
func (OrderStatus) TableName() string {
	return "mtb_order_status"
}

// OrderStatusColor stores the color chosen for a status.
// The color text lives in the name column, usually without the leading "#".
type OrderStatusColor struct {
	ID     int     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name   *string `json:"name" gorm:"type:varchar(255)"`
	SortNo int     `json:"sort_no" gorm:"column:sort_no"`
}

func (OrderStatusColor) TableName() string {
	return "mtb_order_status_color"
}

// Color returns the stored color text or "" when NULL
func (c OrderStatusColor) Color() string {
	if c.Name == nil {
		return ""
	}
	return *c.Name
}
