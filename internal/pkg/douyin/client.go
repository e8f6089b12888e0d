package douyin

import (
	"context"
	"strconv"
	"sync"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// 数据指标接口统一 POST JSON 请求体，仅 ValueKey 不同
type metricEndpoint struct {
	Type     string
	Path     string
	ValueKey string
}

var metricEndpoints = []metricEndpoint{
	{Type: model.MetricTypeFans, Path: "/data/external/user/fans/", ValueKey: "fans_count"},
	{Type: model.MetricTypeLike, Path: "/data/external/user/like/", ValueKey: "like_count"},
	{Type: model.MetricTypeComment, Path: "/data/external/user/comment/", ValueKey: "comment_count"},
	{Type: model.MetricTypeShare, Path: "/data/external/user/share/", ValueKey: "share_count"},
	{Type: model.MetricTypeHomePV, Path: "/data/external/user/profile/", ValueKey: "home_pv"},
	{Type: model.MetricTypeVideo, Path: "/data/external/user/item/", ValueKey: "video_count"},
}

const videoListPath = "/video/list/"

// MetricResult 单个指标的抓取结果
type MetricResult struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Value   int64  `json:"value"`
	Message string `json:"message,omitempty"`
}

// FetchResult 六项指标的整体结果。部分失败是正常返回，
// 调用方须逐项检查
type FetchResult struct {
	Metrics map[string]MetricResult `json:"metrics"`
	Errors  []string                `json:"errors"`
}

// FailedCount 失败指标个数
func (r *FetchResult) FailedCount() int {
	n := 0
	for _, m := range r.Metrics {
		if !m.Success {
			n++
		}
	}
	return n
}

// FetchAll 并发抓取六项指标，全部等待完成后汇总，
// 不因单项失败提前返回
func (c *Client) FetchAll(ctx context.Context, openID, accessToken string, dateType int) *FetchResult {
	result := &FetchResult{
		Metrics: make(map[string]MetricResult, len(metricEndpoints)),
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, ep := range metricEndpoints {
		wg.Add(1)
		go func(ep metricEndpoint) {
			defer wg.Done()
			value, err := c.fetchMetric(ctx, ep, openID, accessToken, dateType)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Metrics[ep.Type] = MetricResult{Type: ep.Type, Success: false, Message: err.Error()}
				result.Errors = append(result.Errors, ep.Type+": "+err.Error())
				return
			}
			result.Metrics[ep.Type] = MetricResult{Type: ep.Type, Success: true, Value: value}
		}(ep)
	}
	wg.Wait()

	return result
}

func (c *Client) fetchMetric(ctx context.Context, ep metricEndpoint, openID, accessToken string, dateType int) (int64, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"open_id":      openID,
			"access_token": accessToken,
			"date_type":    strconv.Itoa(dateType),
		}).
		Post(ep.Path)
	if err != nil {
		return 0, errors.Wrapf(err, "request %s", ep.Path)
	}

	data, apiErr, err := parseEnvelope(resp.Body())
	if err != nil {
		return 0, err
	}
	if apiErr != nil {
		return 0, apiErr
	}

	return numValue(data[ep.ValueKey]), nil
}

// VideoItem 视频列表条目
type VideoItem struct {
	ItemID     string `json:"item_id"`
	Title      string `json:"title"`
	Cover      string `json:"cover"`
	CreateTime int64  `json:"create_time"`
	Statistics struct {
		PlayCount    int64 `json:"play_count"`
		DiggCount    int64 `json:"digg_count"`
		CommentCount int64 `json:"comment_count"`
		ShareCount   int64 `json:"share_count"`
	} `json:"statistics"`
}

// VideoList 拉取视频列表（单页）
func (c *Client) VideoList(ctx context.Context, openID, accessToken string, count int) ([]VideoItem, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"open_id":      openID,
			"access_token": accessToken,
			"count":        count,
			"cursor":       0,
		}).
		Post(videoListPath)
	if err != nil {
		return nil, errors.Wrap(err, "request video list")
	}

	var wrapped struct {
		Data struct {
			List      []VideoItem `json:"list"`
			ErrorCode int64       `json:"error_code"`
			ErrMsg    string      `json:"description"`
		} `json:"data"`
		ErrNo  int64  `json:"err_no"`
		ErrMsg string `json:"err_msg"`
	}
	if err := json.Unmarshal(resp.Body(), &wrapped); err != nil {
		return nil, errors.Wrap(err, "decode video list response")
	}
	if wrapped.ErrNo != 0 {
		return nil, newAPIError(wrapped.ErrNo, wrapped.ErrMsg)
	}
	if wrapped.Data.ErrorCode != 0 {
		return nil, newAPIError(wrapped.Data.ErrorCode, wrapped.Data.ErrMsg)
	}
	return wrapped.Data.List, nil
}

// parseEnvelope 解析 { data, err_no | error_code } 响应体。
// 错误码可能出现在顶层或 data 内，两处都检查
func parseEnvelope(body []byte) (map[string]interface{}, *APIError, error) {
	var envelope struct {
		Data      map[string]interface{} `json:"data"`
		ErrNo     int64                  `json:"err_no"`
		ErrMsg    string                 `json:"err_msg"`
		ErrorCode int64                  `json:"error_code"`
		Message   string                 `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, nil, errors.Wrap(err, "decode response body")
	}

	if envelope.ErrNo != 0 {
		return nil, newAPIError(envelope.ErrNo, envelope.ErrMsg), nil
	}
	if envelope.ErrorCode != 0 {
		return nil, newAPIError(envelope.ErrorCode, envelope.Message), nil
	}
	if envelope.Data != nil {
		if code := numValue(envelope.Data["error_code"]); code != 0 {
			msg, _ := envelope.Data["description"].(string)
			return nil, newAPIError(code, msg), nil
		}
	}
	return envelope.Data, nil, nil
}

func numValue(v interface{}) int64 {
	switch t := v.(type) {
	case float64:
		return int64(t)
	case int64:
		return t
	case json.Number:
		n, _ := t.Int64()
		return n
	}
	return 0
}
