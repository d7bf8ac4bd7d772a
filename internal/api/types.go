package api

// GenerateResponse 是生成服务的响应体
// 服务至少返回 code 字段，内容为生成的网站源码
type GenerateResponse struct {
	Code string `json:"code"`
}

// generatePayload 用于解码原始响应，code 为指针以便区分缺失和空串
type generatePayload struct {
	Code *string `json:"code"`
}
