// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector はセッション操作とHTTPレスポンスのメトリクスを収集する。
// セッションコントローラーのRecorderおよびミドルウェアのStatusObserverを実装する。
type Collector struct {
	logins        prometheus.Counter
	loginFailures prometheus.Counter
	registrations prometheus.Counter
	approvals     prometheus.Counter
	cartAdds      prometheus.Counter
	checkouts     prometheus.Counter
	httpStatus    *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smartcatalog_logins_total",
			Help: "ログイン成功の合計数",
		}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smartcatalog_login_failures_total",
			Help: "ログイン失敗の合計数",
		}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smartcatalog_registrations_total",
			Help: "新規ユーザー登録の合計数",
		}),
		approvals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smartcatalog_approvals_total",
			Help: "管理者によるユーザー承認の合計数",
		}),
		cartAdds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smartcatalog_cart_adds_total",
			Help: "カート追加操作の合計数",
		}),
		checkouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smartcatalog_checkouts_total",
			Help: "チェックアウトの合計数",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "smartcatalog_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.logins,
		c.loginFailures,
		c.registrations,
		c.approvals,
		c.cartAdds,
		c.checkouts,
		c.httpStatus,
	)

	return c
}

// RecordLogin はログイン成功を記録する。
func (c *Collector) RecordLogin() {
	c.logins.Inc()
}

// RecordLoginFailure はログイン失敗を記録する。
func (c *Collector) RecordLoginFailure() {
	c.loginFailures.Inc()
}

// RecordRegistration は新規ユーザー登録を記録する。
func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordApproval は管理者によるユーザー承認を記録する。
func (c *Collector) RecordApproval() {
	c.approvals.Inc()
}

// RecordCartAdd はカート追加操作を記録する。
func (c *Collector) RecordCartAdd() {
	c.cartAdds.Inc()
}

// RecordCheckout はチェックアウトを記録する。
func (c *Collector) RecordCheckout() {
	c.checkouts.Inc()
}

// ObserveHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) ObserveHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
