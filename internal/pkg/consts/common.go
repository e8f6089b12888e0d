package consts

const (
	// EmployeeIDPrefix 员工ID前缀，格式 emp_<毫秒时间戳>_<随机6位>
	EmployeeIDPrefix = "emp_"
)
