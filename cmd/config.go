package cmd

// Config carries every externally supplied setting. Values come from the
// environment (.env via godotenv); shift and scheduling defaults are
// injected explicitly into the planner and the auto-close job instead of
// being read from ambient state.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RoutingBaseURL        string
	RoutingTimeoutSeconds int

	KafkaHost                     string
	KafkaSessionCompletedTopic    string
	KafkaAssignmentCompletedTopic string
	KafkaParcelPostponedTopic     string

	// ShiftStartHour and ShiftEndHour bound the daily working window the
	// auto-close sweep covers.
	ShiftStartHour int
	ShiftEndHour   int

	// AutoCloseCronSpec is a six-field cron expression with seconds.
	AutoCloseCronSpec string

	// ServiceTimeMinutes is the per-stop handling estimate fed to the
	// route planner's shift-time checks.
	ServiceTimeMinutes int
}
