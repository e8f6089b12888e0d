package dto

// EmployeeCreateDTO 新增员工请求
type EmployeeCreateDTO struct {
	Name          string `json:"name" validate:"required,max=100"`
	Department    string `json:"department" validate:"max=100"`
	Position      string `json:"position" validate:"max=100"`
	DouyinAccount string `json:"douyin_account" validate:"required,max=100"`
}

// EmployeeUpdateDTO 员工部分更新，仅枚举的字段可变；
// 未知字段在 JSON 解码阶段即被拒绝
type EmployeeUpdateDTO struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Department    *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Position      *string `json:"position,omitempty" validate:"omitempty,max=100"`
	DouyinAccount *string `json:"douyin_account,omitempty" validate:"omitempty,min=1,max=100"`
}
