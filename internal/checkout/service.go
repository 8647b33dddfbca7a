// Package checkout turns a cart into a hosted checkout session and tracks the
// sessions it created.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/northshoreshop/storefront/internal/domain"
	"github.com/northshoreshop/storefront/internal/logger"
	"github.com/northshoreshop/storefront/internal/metrics"
	"github.com/northshoreshop/storefront/internal/repository"
	"github.com/northshoreshop/storefront/internal/worker"
)

// Service defines the interface for checkout operations
type Service interface {
	CreateSession(ctx context.Context, req domain.CheckoutRequest, origin string) (*domain.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
	Shutdown(ctx context.Context) error
}

// Notifier announces newly created checkout sessions
type Notifier interface {
	NotifySessionCreated(ctx context.Context, session *domain.CheckoutSession, params domain.CheckoutSessionParams) error
}

// Config holds checkout settings
type Config struct {
	AllowedCountries []string
	CacheSize        int
	CacheTTL         time.Duration
}

// Option configures optional collaborators
type Option func(*service)

// WithOrders records created sessions in the order ledger
func WithOrders(orders repository.Orders) Option {
	return func(s *service) {
		s.orders = orders
	}
}

// WithNotifier sends a notification for each created session on the pool
func WithNotifier(notifier Notifier, pool *worker.Pool) Option {
	return func(s *service) {
		s.notifier = notifier
		s.pool = pool
	}
}

type service struct {
	provider repository.Checkout
	orders   repository.Orders
	notifier Notifier
	pool     *worker.Pool
	cache    *sessionCache
	cfg      Config
	newKey   func() string
}

// NewService creates a new checkout service
func NewService(provider repository.Checkout, cfg Config, opts ...Option) Service {
	s := &service{
		provider: provider,
		cache:    newSessionCache(cfg.CacheSize, cfg.CacheTTL),
		cfg:      cfg,
		newKey:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateSession(ctx context.Context, req domain.CheckoutRequest, origin string) (*domain.CheckoutSession, error) {
	log := logger.FromContext(ctx)

	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(origin) == "" {
		return nil, fmt.Errorf(ErrMsgMissingOrigin, domain.ErrInvalidInput)
	}

	params := buildParams(req, origin, s.cfg.AllowedCountries)
	params.IdempotencyKey = s.newKey()

	session, err := s.provider.CreateSession(ctx, params)
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			metrics.ProviderErrors.WithLabelValues(opCreateSession).Inc()
		}
		return nil, fmt.Errorf(ErrMsgCreateSessionFailed, err)
	}

	metrics.CheckoutSessionsCreated.Inc()
	metrics.CheckoutLineItems.Observe(float64(len(params.LineItems)))
	log.Info(LogMsgSessionCreated, "session_id", session.ID, "line_items", len(params.LineItems))

	s.record(ctx, session, params)
	s.notify(ctx, session, params)

	return session, nil
}

// record writes the session to the ledger. Ledger failures never fail the
// checkout since the provider session already exists.
func (s *service) record(ctx context.Context, session *domain.CheckoutSession, params domain.CheckoutSessionParams) {
	if s.orders == nil {
		return
	}

	status := session.Status
	if status == "" {
		status = domain.CheckoutStatusOpen
	}

	record := &domain.OrderRecord{
		SessionID:    session.ID,
		ShippingRate: params.ShippingRate,
		LineItems:    params.LineItems,
		Metadata:     params.Metadata,
		AmountTotal:  session.AmountTotal,
		Currency:     session.Currency,
		Status:       status,
	}
	if err := s.orders.RecordSession(ctx, record); err != nil {
		logger.FromContext(ctx).Error(LogMsgRecordSessionFailed, "session_id", session.ID, "error", err)
	}
}

func (s *service) notify(ctx context.Context, session *domain.CheckoutSession, params domain.CheckoutSessionParams) {
	if s.notifier == nil || s.pool == nil {
		return
	}

	requestID := logger.GetRequestID(ctx)
	job := worker.JobFunc(func(jobCtx context.Context) error {
		if requestID != "" {
			jobCtx = logger.WithRequestID(jobCtx, requestID)
		}
		if err := s.notifier.NotifySessionCreated(jobCtx, session, params); err != nil {
			metrics.NotificationsSent.WithLabelValues(metrics.ResultFailure).Inc()
			return fmt.Errorf(ErrMsgNotificationJobFailed, session.ID, err)
		}
		metrics.NotificationsSent.WithLabelValues(metrics.ResultSuccess).Inc()
		return nil
	})

	if err := s.pool.Enqueue(job); err != nil {
		logger.FromContext(ctx).Warn(LogMsgNotificationDropped, "session_id", session.ID, "error", err)
	}
}

func (s *service) GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf(ErrMsgMissingSessionID, domain.ErrInvalidInput)
	}

	if session, ok := s.cache.Get(sessionID); ok {
		metrics.SessionCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		logger.FromContext(ctx).Debug(LogMsgSessionCacheHit, "session_id", sessionID)
		return session, nil
	}
	metrics.SessionCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	session, err := s.provider.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			metrics.ProviderErrors.WithLabelValues(opGetSession).Inc()
		}
		return nil, fmt.Errorf(ErrMsgGetSessionFailed, sessionID, err)
	}

	if s.cache.Set(session) {
		s.updateStatus(ctx, session)
	}
	return session, nil
}

// updateStatus copies a terminal status into the ledger. It runs once per
// cache fill, not on every lookup.
func (s *service) updateStatus(ctx context.Context, session *domain.CheckoutSession) {
	if s.orders == nil {
		return
	}
	log := logger.FromContext(ctx)
	if err := s.orders.UpdateSessionStatus(ctx, session.ID, session.Status, session.AmountTotal); err != nil {
		log.Error(LogMsgUpdateStatusFailed, "session_id", session.ID, "error", err)
		return
	}
	log.Debug(LogMsgSessionStatusRecorded, "session_id", session.ID, "status", session.Status)
}

func (s *service) Shutdown(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}
	if err := s.pool.Stop(ctx); err != nil {
		return fmt.Errorf(ErrMsgShutdownFailed, err)
	}
	return nil
}
