package consts

const (
	SyncLockKey        = "sync:lock:"
	EmployeeHistoryKey = "employee:metrics:history:"
	StatisticsKey      = "statistics:overview"
)
