package app

// ResourceScheduleRequest reads one resource's entries. Empty bounds are open.
type ResourceScheduleRequest struct {
	ResourceID string `validate:"required"`
	StartDate  string
	EndDate    string
}

func (r *ResourceScheduleRequest) Validate() error {
	return validateStruct(r)
}

// MaxCalendarResources caps how many resources one calendar view may ask for.
const MaxCalendarResources = 30

// CalendarViewRequest reads several resources over a closed date range.
type CalendarViewRequest struct {
	ResourceIDs []string `validate:"required,min=1,calendarlimit,dive,required"`
	StartDate   string   `validate:"required"`
	EndDate     string   `validate:"required"`
}

func (r *CalendarViewRequest) Validate() error {
	return validateStruct(r)
}
