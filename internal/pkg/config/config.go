package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultCallTimeout         = 5 * time.Second
	defaultPollInterval        = 10 * time.Second
	defaultToastTTL            = 6 * time.Second
	defaultViewIdleTTL         = 5 * time.Minute
	defaultViewCleanupInterval = time.Minute
)

type (
	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill, токенов в секунду
		RateLimiterBurst int           // middleware rate limiter capacity (burst)
		PprofEnabled     bool
		PprofPort        string
	}

	// Backend адреса сервисов. Каждый вызов идёт сначала напрямую, затем через gateway.
	Backend struct {
		GatewayURL             string
		UserServiceURL         string
		OrderServiceURL        string
		DeliveryServiceURL     string
		NotificationServiceURL string
		CallTimeout            time.Duration
	}

	Dashboard struct {
		PollInterval        time.Duration
		ToastTTL            time.Duration
		ViewIdleTTL         time.Duration
		ViewCleanupInterval time.Duration
	}

	Log struct {
		Level  string
		Format string
	}

	Kafka struct {
		Enabled       bool
		Brokers       []string
		Topic         string
		ConsumerGroup string
		Sarama        Sarama
		Handlers      KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Server    HTTPServer
		Backend   Backend
		Dashboard Dashboard
		Log       Log
		Kafka     Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	callTimeout, err := osGetEnvDuration("BACKEND_CALL_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pollInterval, err := osGetEnvDuration("DASHBOARD_POLL_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	toastTTL, err := osGetEnvDuration("DASHBOARD_TOAST_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	viewIdleTTL, err := osGetEnvDuration("DASHBOARD_VIEW_IDLE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	viewCleanupInterval, err := osGetEnvDuration("DASHBOARD_VIEW_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kafkaEnabled, err := osGetBool("KAFKA_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Backend: Backend{
			GatewayURL:             strings.TrimRight(os.Getenv("BACKEND_GATEWAY_URL"), "/"),
			UserServiceURL:         strings.TrimRight(os.Getenv("BACKEND_USER_SERVICE_URL"), "/"),
			OrderServiceURL:        strings.TrimRight(os.Getenv("BACKEND_ORDER_SERVICE_URL"), "/"),
			DeliveryServiceURL:     strings.TrimRight(os.Getenv("BACKEND_DELIVERY_SERVICE_URL"), "/"),
			NotificationServiceURL: strings.TrimRight(os.Getenv("BACKEND_NOTIFICATION_SERVICE_URL"), "/"),
			CallTimeout:            orDefault(callTimeout, defaultCallTimeout),
		},
		Dashboard: Dashboard{
			PollInterval:        orDefault(pollInterval, defaultPollInterval),
			ToastTTL:            orDefault(toastTTL, defaultToastTTL),
			ViewIdleTTL:         orDefault(viewIdleTTL, defaultViewIdleTTL),
			ViewCleanupInterval: orDefault(viewCleanupInterval, defaultViewCleanupInterval),
		},
		Log: Log{
			Level:  os.Getenv("LOG_LEVEL"),
			Format: os.Getenv("LOG_FORMAT"),
		},
		Kafka: Kafka{
			Enabled:       kafkaEnabled,
			Brokers:       splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:         os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup: os.Getenv("KAFKA_CONSUMER_GROUP"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Backend.GatewayURL == "" {
		return errors.New("BACKEND_GATEWAY_URL is required")
	}
	if cfg.Backend.UserServiceURL == "" {
		return errors.New("BACKEND_USER_SERVICE_URL is required")
	}
	if cfg.Backend.OrderServiceURL == "" {
		return errors.New("BACKEND_ORDER_SERVICE_URL is required")
	}
	if cfg.Backend.DeliveryServiceURL == "" {
		return errors.New("BACKEND_DELIVERY_SERVICE_URL is required")
	}
	if cfg.Backend.NotificationServiceURL == "" {
		return errors.New("BACKEND_NOTIFICATION_SERVICE_URL is required")
	}

	if cfg.Dashboard.ViewCleanupInterval > cfg.Dashboard.ViewIdleTTL {
		return errors.New("DASHBOARD_VIEW_CLEANUP_INTERVAL must not exceed DASHBOARD_VIEW_IDLE_TTL")
	}

	// Kafka необязательна: без неё экраны обновляются только опросом.
	if !cfg.Kafka.Enabled {
		return nil
	}
	if len(cfg.Kafka.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PROCESS_TIMEOUT is required")
	}

	return nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d == 0 {
		return def
	}
	return d
}

func splitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
