package constant

const (
	STATUS_PENDING   = "pending"
	STATUS_COMPLETED = "completed"

	STATUS_LABEL_PENDING   = "in progress"
	STATUS_LABEL_COMPLETED = "completed"

	// Label used when a request references a task type that no longer
	// resolves against the supplied task-type list.
	UNKNOWN_TASK_TYPE = "unknown task type"

	MONTH_KEY_FORMAT = "2006-01"
	DATE_FORMAT      = "2006-01-02"
	DATETIME_FORMAT  = "2006-01-02 15:04:05"

	DEFAULT_UNIT = "piece"

	EXPORT_BASENAME = "taskdesk-request-log"
)
