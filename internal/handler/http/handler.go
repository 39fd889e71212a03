// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// limiterEntryTTL is how long an idle client IP keeps its limiter bucket.
const limiterEntryTTL = 10 * time.Minute

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// secureCookie controls the Secure attribute of the session cookie.
	secureCookie bool

	authLimiter *ipLimiter

	// requestTimeout bounds the context of every request. Zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("insecure_cookie", cfg.InsecureCookie).
		Float64("auth_rate_limit", cfg.AuthRateLimit).
		Int("auth_rate_burst", cfg.AuthRateBurst).
		Msg("http handler created")

	return &Handler{
		services:       services,
		metrics:        m,
		secureCookie:   !cfg.InsecureCookie,
		authLimiter:    newIPLimiter(rate.Limit(cfg.AuthRateLimit), cfg.AuthRateBurst, limiterEntryTTL),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
