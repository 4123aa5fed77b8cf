package request

// DateRangeRequest bounds reporting and export queries, dates inclusive.
type DateRangeRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
}
