package config

// Otel configures trace export. Tracing is off when CollectorURL is empty.
type Otel struct {
	ServiceName    string  `env:"OTEL_SERVICE_NAME" envDefault:"product-catalog"`
	ServiceVersion string  `env:"OTEL_SERVICE_VERSION" envDefault:"dev"`
	Environment    string  `env:"OTEL_ENVIRONMENT" envDefault:"local"`
	CollectorURL   string  `env:"OTEL_COLLECTOR_URL"`
	CollectorAuth  string  `env:"OTEL_COLLECTOR_AUTH"`
	Insecure       bool    `env:"OTEL_INSECURE"`
	TraceIDRatio   float64 `env:"OTEL_TRACE_ID_RATIO" envDefault:"0.1"`

	K8sPodName   string `env:"K8S_POD_NAME"`
	K8sNamespace string `env:"K8S_NAMESPACE"`
}
