package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/consts"
	"github.com/google/uuid"
)

// GenerateEmployeeID 生成 emp_<毫秒时间戳>_<随机6位> 格式的员工ID
func GenerateEmployeeID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return consts.EmployeeIDPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + random
}
