package internal

import (
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestInternal(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Internal Suite")
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              8080,
			BaseURL:           "http://localhost:8080",
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			IdleTimeout:       60 * time.Second,
			WriteTimeout:      15 * time.Second,
		},
		Security: SecurityConfig{
			SessionSecret:  "change-this-in-production-0123456789abcdef",
			SessionTTL:     30 * 24 * time.Hour,
			BCryptCost:     12,
			LoginRateBurst: 10,
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{Level: "info", Format: "json"},
		},
	}
}

var _ = ginkgo.Describe("Config validation", func() {
	ginkgo.It("should accept the default shape", func() {
		gomega.Expect(validConfig().Validate()).To(gomega.Succeed())
	})

	ginkgo.It("should reject a short session secret", func() {
		cfg := validConfig()
		cfg.Security.SessionSecret = "short"

		err := cfg.Validate()
		gomega.Expect(err).To(gomega.HaveOccurred())
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("session secret"))
	})

	ginkgo.It("should reject a sub-minute session ttl", func() {
		cfg := validConfig()
		cfg.Security.SessionTTL = 30 * time.Second
		gomega.Expect(cfg.Validate()).To(gomega.HaveOccurred())
	})

	ginkgo.It("should reject bcrypt cost outside 10-15", func() {
		cfg := validConfig()
		cfg.Security.BCryptCost = 4
		gomega.Expect(cfg.Validate()).To(gomega.HaveOccurred())

		cfg.Security.BCryptCost = 16
		gomega.Expect(cfg.Validate()).To(gomega.HaveOccurred())
	})

	ginkgo.It("should reject an out-of-range port", func() {
		cfg := validConfig()
		cfg.Server.Port = 0
		gomega.Expect(cfg.Validate()).To(gomega.HaveOccurred())
	})

	ginkgo.It("should reject read_timeout below read_header_timeout", func() {
		cfg := validConfig()
		cfg.Server.ReadTimeout = time.Second
		gomega.Expect(cfg.Validate()).To(gomega.HaveOccurred())
	})

	ginkgo.It("should reject unknown log levels and formats", func() {
		cfg := validConfig()
		cfg.Observability.Logging.Level = "verbose"
		gomega.Expect(cfg.Validate()).To(gomega.HaveOccurred())

		cfg = validConfig()
		cfg.Observability.Logging.Format = "logfmt"
		gomega.Expect(cfg.Validate()).To(gomega.HaveOccurred())
	})

	ginkgo.It("should collect failures from every section", func() {
		cfg := validConfig()
		cfg.Server.Port = -1
		cfg.Security.SessionSecret = ""
		cfg.Observability.Logging.Level = "bogus"

		err := cfg.Validate()
		gomega.Expect(err).To(gomega.HaveOccurred())
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("server config"))
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("security config"))
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("logging config"))
	})
})

var _ = ginkgo.Describe("LoadConfigFromEnv", func() {
	ginkgo.It("should fall back to documented defaults", func() {
		cfg := LoadConfigFromEnv()

		gomega.Expect(cfg.Server.Port).To(gomega.Equal(8080))
		gomega.Expect(cfg.Security.SessionTTL).To(gomega.Equal(30 * 24 * time.Hour))
		gomega.Expect(cfg.Security.BCryptCost).To(gomega.Equal(12))
		gomega.Expect(cfg.Observability.Logging.Format).To(gomega.Equal("json"))
	})
})
