package response

type WeeklyRevenueBucket struct {
	WeekLabel    string  `json:"week_label"`
	WeekStart    string  `json:"week_start"`
	WeekEnd      string  `json:"week_end"`
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"booking_count"`
}

type WeeklyRevenueResponse struct {
	Weeks             []WeeklyRevenueBucket `json:"weeks"`
	TotalRevenue      float64               `json:"total_revenue"`
	TotalBookingCount int                   `json:"total_booking_count"`
	CashRevenue       float64               `json:"cash_revenue"`
	CardRevenue       float64               `json:"card_revenue"`
}
