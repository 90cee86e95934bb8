package dto

type AnalyticsMonthDetailRequest struct {
	Month string `param:"month" validate:"required,len=7"`
}

type AnalyticsExportRequest struct {
	Format string `query:"format" validate:"required,oneof=csv excel pdf"`
}
