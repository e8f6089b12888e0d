package douyin

import "fmt"

// APIError 开放平台返回的非零错误码。
// 仅用于诊断信息，调用方自行决定如何处理（例如 token 过期时触发重新授权）。
type APIError struct {
	Code    int64
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("抖音接口错误 %d: %s", e.Code, e.Message)
}

// 已知错误码与可读原因的映射，参考开放平台文档
var errorCauses = map[int64]string{
	2190002:     "access_token无效，请重新授权",
	2190008:     "access_token过期，请刷新或重新授权",
	20028001003: "access_token无效，请重新授权",
	20028001005: "系统内部错误，请重试",
	20028001006: "网络调用错误，请重试",
	20028001007: "参数不合法，请检查请求参数",
	20028001008: "access_token过期，请刷新或重新授权",
	20028001014: "应用未授权任何能力，请检查应用配置",
	20028001016: "当前应用已被封禁或下线",
	20028001018: "应用未获得该能力，请开通相关能力",
	20028001019: "应用该能力已被封禁，请联系平台处理",
	20028003017: "quota已用完，请联系平台处理",
}

// Describe 将错误码翻译为可读原因；未知码退回原始消息或通用提示
func Describe(code int64, rawMessage string) string {
	if cause, ok := errorCauses[code]; ok {
		return cause
	}
	if rawMessage != "" {
		return rawMessage
	}
	return "未知错误"
}

func newAPIError(code int64, rawMessage string) *APIError {
	return &APIError{Code: code, Message: Describe(code, rawMessage)}
}
