// Package metrics Prometheus指标
//
// 指标注册到默认Registry,通过/metrics端点暴露。
// 命名约定:Counter以_total结尾,Histogram以单位结尾(_seconds、_bytes)。
// 标签只使用有限取值(方法、路由模板、状态码、操作名),避免高基数。
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booklist"

var (
	once sync.Once

	// HTTPRequestsTotal HTTP请求总数,标签:method、path(路由模板)、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时,标签:method、path
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// BookMutationsTotal 图书写操作次数,标签:operation(create/update/delete/reset)
	BookMutationsTotal *prometheus.CounterVec

	// NotesCreatedTotal 新增笔记数
	NotesCreatedTotal prometheus.Counter

	// UploadsTotal 上传次数,标签:result(success/rejected/failure)
	UploadsTotal *prometheus.CounterVec

	// UploadSize 上传文件大小分布
	UploadSize prometheus.Histogram

	// StorageOperationDuration 对象存储调用耗时,标签:operation、result
	StorageOperationDuration *prometheus.HistogramVec

	// CircuitBreakerState 熔断器状态(0=CLOSED, 1=OPEN, 2=HALF_OPEN),标签:name
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求数,标签:name、result(success/failure/rejected)
	CircuitBreakerRequests *prometheus.CounterVec
)

// InitMetrics 注册全部指标,可以重复调用
func InitMetrics() {
	once.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP请求耗时（秒）",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_progress",
			Help:      "正在处理的HTTP请求数",
		},
	)

	BookMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "book_mutations_total",
			Help:      "图书写操作次数",
		},
		[]string{"operation"},
	)

	NotesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notes_created_total",
			Help:      "新增笔记数",
		},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "图片上传次数",
		},
		[]string{"result"},
	)

	UploadSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_size_bytes",
			Help:      "上传文件大小（字节）",
			Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 6), // 16KB .. 16MB
		},
	)

	StorageOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "storage_operation_duration_seconds",
			Help:      "对象存储调用耗时（秒）",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"operation", "result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_requests_total",
			Help:      "熔断器请求总数",
		},
		[]string{"name", "result"},
	)
}

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	InitMetrics()
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// IncBookMutation 记录一次图书写操作
func IncBookMutation(operation string) {
	InitMetrics()
	BookMutationsTotal.WithLabelValues(operation).Inc()
}

// IncNotesCreated 记录新增笔记
func IncNotesCreated() {
	InitMetrics()
	NotesCreatedTotal.Inc()
}

// ObserveUpload 记录一次上传,size<0表示没有读到文件
func ObserveUpload(result string, size int64) {
	InitMetrics()
	UploadsTotal.WithLabelValues(result).Inc()
	if size >= 0 {
		UploadSize.Observe(float64(size))
	}
}

// ObserveStorage 记录一次对象存储调用
func ObserveStorage(operation string, elapsed time.Duration, err error) {
	InitMetrics()
	result := "success"
	if err != nil {
		result = "failure"
	}
	StorageOperationDuration.WithLabelValues(operation, result).Observe(elapsed.Seconds())
}

// SetCircuitBreakerState 更新熔断器状态
func SetCircuitBreakerState(name string, state int) {
	InitMetrics()
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// IncCircuitBreakerRequest 记录熔断器请求结果
func IncCircuitBreakerRequest(name, result string) {
	InitMetrics()
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}
